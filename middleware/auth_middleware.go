package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pelayanandata/portal-go/types"
)

// RequireRole rejects any session whose role is outside the given set. The
// per-entity checks (ownership, state) still run inside the services; this
// only keeps staff-facing routes off-limits to requesters.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
