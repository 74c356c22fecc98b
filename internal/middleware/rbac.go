package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mergington-high/activities-api/internal/utils"
)

// RequireRole ensures the request carries one of the allowed roles. Unlike
// the roster role gate, this guard is strict: an unresolved role is denied.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		normalized := strings.ToLower(strings.TrimSpace(role))
		if normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		role := RoleFromContext(c)
		if _, ok := allowed[role]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
