package middleware

import (
	"net/http"
	"strings"

	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/services/auth"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// JWTAuthMiddleware resolves the bearer token to an actor exactly once per
// request and stores the immutable value in the request context. No handler
// re-reads session state after this point.
func JWTAuthMiddleware(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actor, err := authSvc.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(actorKey, *actor)
		c.Next()
	}
}

// GetActor returns the actor resolved by JWTAuthMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
