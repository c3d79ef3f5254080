package middleware

import (
	"net/http"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. Must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString("role")
		if !allowed[role] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
