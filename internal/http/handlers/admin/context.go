package admin

import (
	"github.com/dumo-express/internal/constants"
	handlershared "github.com/dumo-express/internal/http/handlers/shared"
	"github.com/dumo-express/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "admin_id")
}

// requireAdmin enforces the admin role at the top of every operator
// handler. The auth middleware only authenticates; the role decision
// lives here with the operation it protects.
func requireAdmin(c *gin.Context) bool {
	value, exists := c.Get("role")
	if !exists {
		respondError(c, response.CodeUnauthorized, "authentication required", nil)
		return false
	}
	role, ok := value.(string)
	if !ok || role != constants.RoleAdmin {
		respondError(c, response.CodeForbidden, "admin role required", nil)
		return false
	}
	return true
}
