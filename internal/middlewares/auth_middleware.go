package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/services"
)

// Authenticate verifies the Bearer access token and loads the live
// session into the request context. A valid token whose session is
// gone (logout, rotation) is rejected the same as a bad token.
func Authenticate(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing Authorization header"})
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization format"})
			return
		}

		session, jti, err := authService.SessionFromToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set("session", session)
		c.Set("jti", jti)

		c.Next()
	}
}
