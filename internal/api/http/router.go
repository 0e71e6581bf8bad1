package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-labs/ticket-tracker/internal/api/http/handlers"
	"github.com/helpdesk-labs/ticket-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
	RateLimiter    fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	if cfg.RateLimiter != nil {
		authGroup.Use(cfg.RateLimiter)
	}
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)

	tickets := api.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/", cfg.Tickets.List)
	tickets.Put("/:id", auth.RequireAdmin(), cfg.Tickets.UpdateStatus)
	tickets.Get("/:id/audit", auth.RequireAdmin(), cfg.Tickets.ListAudit)
}
