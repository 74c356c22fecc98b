package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mergington-high/activities-api/internal/service"
)

const bearerPrefix = "Bearer "

// ResolveRole looks up the bearer token (if any) in the static role table
// and stores the resolved role in request locals. A missing or unknown
// token resolves to no role and is never an error here; endpoints decide
// what an empty role means.
func ResolveRole(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if strings.HasPrefix(header, bearerPrefix) {
			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			if role := auth.ResolveRole(token); role != "" {
				c.Locals("user_role", role)
			}
		}
		return c.Next()
	}
}

// RoleFromContext returns the resolved role for the request, or "".
func RoleFromContext(c *fiber.Ctx) string {
	if value := c.Locals("user_role"); value != nil {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}
