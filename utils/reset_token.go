package utils

import (
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homechef/marketplace-api/models"
)

var (
	secretOnce sync.Once
	secretKey  []byte
)

// signingSecret reads AUTH_SECRET_KEY on first use, after main has had the
// chance to load .env files.
func signingSecret() []byte {
	secretOnce.Do(func() {
		secret := os.Getenv("AUTH_SECRET_KEY")
		if secret == "" {
			secret = "homechef-dev-secret"
		}
		secretKey = []byte(secret)
	})
	return secretKey
}

const resetTokenTTL = time.Hour

type resetClaims struct {
	UserID  uint   `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// resetKey mixes the server secret with the user's current password hash so
// every outstanding reset token dies the moment the password changes.
func resetKey(user *models.User) []byte {
	return append(append([]byte{}, signingSecret()...), []byte(user.Password)...)
}

// MakeResetToken issues a signed, time-limited password reset token for the user.
func MakeResetToken(user *models.User) (string, error) {
	claims := &resetClaims{
		UserID:  user.ID,
		Purpose: "password_reset",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(resetKey(user))
}

// CheckResetToken validates a reset token against the user it was issued for.
func CheckResetToken(user *models.User, tokenString string) error {
	claims := &resetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return resetKey(user), nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid or expired token")
	}
	if claims.UserID != user.ID || claims.Purpose != "password_reset" {
		return errors.New("invalid or expired token")
	}
	return nil
}

// EncodeUID encodes a user id the way reset links carry it.
func EncodeUID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

// DecodeUID reverses EncodeUID.
func DecodeUID(uid string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return 0, errors.New("invalid uid")
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, errors.New("invalid uid")
	}
	return uint(id), nil
}
