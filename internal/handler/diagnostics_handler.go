package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/contractor-site-api/internal/config"
	"github.com/noah-isme/contractor-site-api/internal/dto"
	"github.com/noah-isme/contractor-site-api/internal/service"
	"github.com/noah-isme/contractor-site-api/internal/utils"
)

const maxProbeErrorLength = 50

// DiagnosticsHandler reports backend liveness and best-effort database reachability.
type DiagnosticsHandler struct {
	service service.DiagnosticsService
	cfg     config.Config
}

// NewDiagnosticsHandler constructs the handler. cfg supplies whether the database settings were provided.
func NewDiagnosticsHandler(service service.DiagnosticsService, cfg config.Config) *DiagnosticsHandler {
	return &DiagnosticsHandler{service: service, cfg: cfg}
}

// Register wires the diagnostics route.
func (h *DiagnosticsHandler) Register(router fiber.Router) {
	router.Get("/test", h.probe)
}

// probe always answers 200; failures are reported in the body.
func (h *DiagnosticsHandler) probe(c *fiber.Ctx) error {
	result := h.service.Probe(c.UserContext())
	return utils.SendJSON(c, NewDiagnosticsResponse(result, h.cfg))
}

// NewDiagnosticsResponse translates a probe result into the public response shape.
func NewDiagnosticsResponse(result service.ProbeResult, cfg config.Config) dto.DiagnosticsResponse {
	response := dto.DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setLabel(cfg.DatabaseConfigured()),
		DatabaseName:     setLabel(cfg.DatabaseNameConfigured()),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	switch result.Status {
	case service.ProbeUninitialized:
		response.Database = "⚠️  Available but not initialized"
	case service.ProbeUnavailable:
		if result.Err != nil {
			response.Database = "❌ Error: " + truncate(result.Err.Error(), maxProbeErrorLength)
		}
	case service.ProbeConnected:
		response.Database = "✅ Connected & Working"
		response.ConnectionStatus = "Connected"
		if len(result.Collections) > 0 {
			response.Collections = result.Collections
		}
	case service.ProbeConnectedWithError:
		response.Database = "⚠️  Connected but Error: " + errorText(result.Err)
		response.ConnectionStatus = "Connected"
	}

	return response
}

func setLabel(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func errorText(err error) string {
	if err == nil {
		return "unknown"
	}
	return truncate(err.Error(), maxProbeErrorLength)
}
