package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/utils"
)

// RequireRoles returns a middleware that rejects requests whose authenticated
// role is not in the given set. The role set is configured per route.
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	allowed := make(map[UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if _, ok := allowed[role]; !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts a route to org owners and admins.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(RoleOwner, RoleAdmin)
}
