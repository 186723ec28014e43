package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/contractor-site-api/internal/dto"
	"github.com/noah-isme/contractor-site-api/internal/service"
	"github.com/noah-isme/contractor-site-api/internal/utils"
)

// ContactHandler handles contact submissions.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendValidationError(c, bodyParseDetails(err))
	}

	response, err := h.service.Submit(c.UserContext(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendValidationError(c, validationDetails(err))
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to store contact submission")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSON(c, response)
}
