package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/contractor-site-api/internal/config"
	"github.com/noah-isme/contractor-site-api/internal/handler"
	"github.com/noah-isme/contractor-site-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContentHandler     *handler.ContentHandler
	DiagnosticsHandler *handler.DiagnosticsHandler
	ContactHandler     *handler.ContactHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	// Ambient endpoints
	app.Get("/healthz", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.ContentHandler != nil {
		deps.ContentHandler.Register(app)
	}

	if deps.DiagnosticsHandler != nil {
		deps.DiagnosticsHandler.Register(app)
	}

	if deps.ContactHandler != nil {
		contact := app.Group("/api/contact")
		deps.ContactHandler.Register(contact)
	}
}
