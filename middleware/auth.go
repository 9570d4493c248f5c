package middleware

import (
	"errors"
	"net/http"
	"strings"

	"finance-tracker/api/auth"
	"finance-tracker/api/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key under which the authenticated user's id
// is stored for downstream handlers.
const UserIDKey = "user_id"

// Auth returns a middleware that verifies the bearer token on each request
// and rejects the request before any handler runs when it is missing,
// malformed, or expired. It never touches the store: only token validity is
// checked here.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.Request)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"kind":  "unauthorized",
				"error": "Missing or invalid token",
			})
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			logger.Get().Debug("token rejected", zap.Error(err))
			message := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"kind":  "unauthorized",
				"error": message,
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
