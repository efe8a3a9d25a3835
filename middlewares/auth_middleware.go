package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homechef/marketplace-api/models"
	"github.com/homechef/marketplace-api/utils"
)

// AuthMiddleware resolves the opaque bearer token to its user. The user row is
// loaded with both role profiles so downstream handlers can branch on type
// without extra queries.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")
		var token models.AuthToken
		err := db.Preload("User.Chef").Preload("User.Consumer").
			Where("key = ?", key).First(&token).Error
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid token"))
			c.Abort()
			return
		}

		c.Set("user", &token.User)
		c.Set("user_id", token.UserID)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
