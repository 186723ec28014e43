package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contractor-site-api/internal/middleware"
)

func TestCorrelationIDReusesIncomingHeader(t *testing.T) {
	var seen, fromCtx string
	app := fiber.New()
	app.Use(middleware.CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error {
		seen = middleware.GetCorrelationID(c)
		fromCtx = middleware.CorrelationIDFromContext(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, "req-123", seen)
	require.Equal(t, "req-123", fromCtx)
	require.Equal(t, "req-123", resp.Header.Get(middleware.HeaderCorrelationID))
}

func TestCorrelationIDGeneratesWhenMissingOrOversized(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderCorrelationID, strings.Repeat("x", 500))
	resp, err := app.Test(req)
	require.NoError(t, err)

	id := resp.Header.Get(middleware.HeaderCorrelationID)
	require.NotEmpty(t, id)
	require.Less(t, len(id), 500)
}

func TestRegisterAppliesCORSAndRecover(t *testing.T) {
	app := fiber.New()
	middleware.Register(app, middleware.Config{AllowOrigins: "https://example.com"})
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "https://example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
