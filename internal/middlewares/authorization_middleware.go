package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/models"
)

// RequireRole gates a route group to the given roles. Must run after
// Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("session")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		session, ok := value.(*models.Session)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied."})
	}
}

// RequireAdmin is shorthand for the admin-only pages.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
