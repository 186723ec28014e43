package handler_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contractor-site-api/internal/config"
	"github.com/noah-isme/contractor-site-api/internal/dto"
	"github.com/noah-isme/contractor-site-api/internal/handler"
	"github.com/noah-isme/contractor-site-api/internal/service"
)

type stubDiagnosticsService struct {
	result service.ProbeResult
}

func (s stubDiagnosticsService) Probe(context.Context) service.ProbeResult {
	return s.result
}

func TestDiagnosticsHandler_Uninitialized(t *testing.T) {
	app := fiber.New()
	handler.NewDiagnosticsHandler(stubDiagnosticsService{result: service.ProbeResult{Status: service.ProbeUninitialized}}, config.Config{}).Register(app)

	resp := performRequest(t, app, http.MethodGet, "/test", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.DiagnosticsResponse
	decodeResponse(t, resp, &body)
	require.Equal(t, "✅ Running", body.Backend)
	require.Equal(t, "⚠️  Available but not initialized", body.Database)
	require.Equal(t, "❌ Not Set", body.DatabaseURL)
	require.Equal(t, "❌ Not Set", body.DatabaseName)
	require.Equal(t, "Not Connected", body.ConnectionStatus)
	require.NotNil(t, body.Collections)
	require.Empty(t, body.Collections)
}

func TestDiagnosticsResponse_States(t *testing.T) {
	cfg := config.Config{DatabaseURL: "mongodb://localhost", DatabaseName: "site"}
	longErr := errors.New(strings.Repeat("x", 80))

	t.Run("connected", func(t *testing.T) {
		resp := handler.NewDiagnosticsResponse(service.ProbeResult{
			Status:      service.ProbeConnected,
			Collections: []string{"contactsubmission"},
		}, cfg)
		require.Equal(t, "✅ Connected & Working", resp.Database)
		require.Equal(t, "Connected", resp.ConnectionStatus)
		require.Equal(t, "✅ Set", resp.DatabaseURL)
		require.Equal(t, "✅ Set", resp.DatabaseName)
		require.Equal(t, []string{"contactsubmission"}, resp.Collections)
	})

	t.Run("connected with no collections", func(t *testing.T) {
		resp := handler.NewDiagnosticsResponse(service.ProbeResult{Status: service.ProbeConnected}, cfg)
		require.NotNil(t, resp.Collections)
		require.Empty(t, resp.Collections)
	})

	t.Run("connected with error", func(t *testing.T) {
		resp := handler.NewDiagnosticsResponse(service.ProbeResult{Status: service.ProbeConnectedWithError, Err: longErr}, cfg)
		require.Equal(t, "⚠️  Connected but Error: "+strings.Repeat("x", 50), resp.Database)
		require.Equal(t, "Connected", resp.ConnectionStatus)
		require.Empty(t, resp.Collections)
	})

	t.Run("unavailable with error", func(t *testing.T) {
		resp := handler.NewDiagnosticsResponse(service.ProbeResult{Status: service.ProbeUnavailable, Err: errors.New("dial tcp: refused")}, cfg)
		require.Equal(t, "❌ Error: dial tcp: refused", resp.Database)
		require.Equal(t, "Not Connected", resp.ConnectionStatus)
	})

	t.Run("unavailable without error", func(t *testing.T) {
		resp := handler.NewDiagnosticsResponse(service.ProbeResult{Status: service.ProbeUnavailable}, cfg)
		require.Equal(t, "❌ Not Available", resp.Database)
	})
}
