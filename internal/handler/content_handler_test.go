package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contractor-site-api/internal/dto"
	"github.com/noah-isme/contractor-site-api/internal/handler"
	"github.com/noah-isme/contractor-site-api/internal/service"
)

func newContentApp() *fiber.App {
	app := fiber.New()
	handler.NewContentHandler(service.NewContentService()).Register(app)
	return app
}

func TestContentHandler_Messages(t *testing.T) {
	app := newContentApp()

	cases := map[string]string{
		"/":          "Hello from the contractor site backend!",
		"/api/hello": "Hello from the backend API!",
	}
	for path, expected := range cases {
		resp := performRequest(t, app, http.MethodGet, path, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.MessageResponse
		decodeResponse(t, resp, &body)
		require.Equal(t, expected, body.Message)
	}
}

func TestContentHandler_ServicesIgnoresQuery(t *testing.T) {
	app := newContentApp()

	resp := performRequest(t, app, http.MethodGet, "/api/services?limit=1&page=9", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ServiceListResponse
	decodeResponse(t, resp, &body)
	require.Len(t, body.Services, 4)
	require.Equal(t, "General Contracting", body.Services[0].Title)
	require.Equal(t, "Saw", body.Services[3].Icon)
}
