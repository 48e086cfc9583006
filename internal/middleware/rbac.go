package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/App-Genius/topline-platform/internal/rbac"
	"github.com/App-Genius/topline-platform/internal/utils"
)

// RequireManager admits manager-tier roles only.
func RequireManager() fiber.Handler {
	return requirePolicy(rbac.CanAccessManager)
}

// RequireAdmin admits the admin role only; managers do not qualify.
func RequireAdmin() fiber.Handler {
	return requirePolicy(rbac.CanAccessAdmin)
}

// RequireFeature admits the roles the policy engine allows for the named
// feature.
func RequireFeature(feature string) fiber.Handler {
	return requirePolicy(func(role rbac.Role) bool {
		return rbac.CanAccessFeature(role, feature)
	})
}

func requirePolicy(allowed func(rbac.Role) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := rbac.Role(normalizeRoleValue(c.Locals("user_role")))
		if !allowed(role) {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}

// Roles travel upper-case to match the role enumeration.
func normalizeRoleValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.ToUpper(strings.TrimSpace(v))
	case fmt.Stringer:
		return strings.ToUpper(strings.TrimSpace(v.String()))
	default:
		if value == nil {
			return ""
		}
		return strings.ToUpper(strings.TrimSpace(fmt.Sprintf("%v", value)))
	}
}
