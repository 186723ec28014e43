package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/contractor-site-api/internal/config"
	"github.com/noah-isme/contractor-site-api/internal/utils"
)

// HealthResponse represents the payload returned by the liveness endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
}

// HealthCheck returns a handler that reports process liveness. It does not touch the database.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendJSON(c, HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
		})
	}
}
