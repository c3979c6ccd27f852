package middleware

import (
	"net/http"

	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests whose actor has none of the given roles.
// It must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// RequireAdmin gates admin-only endpoints.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
