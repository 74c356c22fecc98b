package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mergington-high/activities-api/internal/config"
	"github.com/mergington-high/activities-api/internal/handler"
	"github.com/mergington-high/activities-api/internal/middleware"
	"github.com/mergington-high/activities-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ActivityHandler *handler.ActivityHandler
	AuthHandler     *handler.AuthHandler
	AuditHandler    *handler.AuditHandler
	RoleMiddleware  fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusFound)
	})

	if cfg.StaticDir != "" {
		app.Static("/static", cfg.StaticDir)
	}

	app.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	roleMiddleware := deps.RoleMiddleware
	if roleMiddleware == nil {
		roleMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(app.Group("/activities", roleMiddleware))
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(app)
	}

	if deps.AuditHandler != nil {
		admin := app.Group("/admin", roleMiddleware, middleware.RequireRole("admin"))
		deps.AuditHandler.Register(admin)
	}
}
