package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sena-h/group-companion/internal/constants"
	apierrors "github.com/sena-h/group-companion/internal/errors"
	"github.com/sena-h/group-companion/internal/services"
)

// RequireAdmin gates a route group behind the admin bearer token. Token
// verification is signature-only, so unauthenticated requests are rejected
// without touching the store.
func RequireAdmin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := authService.VerifyToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, claims.AdminID)
		c.Set(constants.ContextKeyAdminUsername, claims.Username)
		c.Next()
	}
}

// GetAdminID retrieves the authenticated admin ID from context
func GetAdminID(c *gin.Context) (uint64, bool) {
	adminID, exists := c.Get(constants.ContextKeyAdminID)
	if !exists {
		return 0, false
	}

	id, ok := adminID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
