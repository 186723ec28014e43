package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/contractor-site-api/internal/dto"
)

// SendJSON writes payload with a 200 status.
func SendJSON(c *fiber.Ctx, payload interface{}) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Detail: message})
}

// SendValidationError sends a 422 response listing every invalid field.
func SendValidationError(c *fiber.Ctx, details []dto.FieldError) error {
	if details == nil {
		details = []dto.FieldError{}
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Detail: details})
}
