package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-labs/ticket-tracker/internal/config"
)

func TestRateLimiterPassthroughWhenDisabled(t *testing.T) {
	app := fiber.New()
	app.Use(NewRateLimiter(config.RateLimitConfig{Enabled: false}, nil))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("disabled limiter blocked request: %d", resp.StatusCode)
	}
}

func TestRateLimiterPassthroughWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Use(NewRateLimiter(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("limiter without redis blocked request: %d", resp.StatusCode)
	}
}
