package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"premios-backend/internal/shared/response"
	"premios-backend/pkg/jwt"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
)

// AuthMiddleware verifies the Bearer token and attaches the decoded
// claims to the gin context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Forbidden(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)

		c.Next()
	}
}
