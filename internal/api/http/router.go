package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/spec-kit/portfolio-api/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Submissions *handlers.SubmissionHandler
}

// RegisterRoutes wires HTTP routes. The submission endpoint accepts POST
// only; every other method gets the 405 envelope without reaching a handler.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST, GET",
		AllowHeaders: "Content-Type",
	}))

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/api", cfg.Submissions.Handle)
	app.All("/api", cfg.Submissions.MethodNotAllowed)
}
