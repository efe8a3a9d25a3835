package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTokenKey returns a 40-character opaque hex key for bearer tokens.
func GenerateTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
