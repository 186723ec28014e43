package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/contractor-site-api/internal/service"
	"github.com/noah-isme/contractor-site-api/internal/utils"
)

// ContentHandler serves the static informational endpoints.
type ContentHandler struct {
	service service.ContentService
}

// NewContentHandler constructs the handler.
func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Register wires the content routes. router is expected to be the application root.
func (h *ContentHandler) Register(router fiber.Router) {
	router.Get("/", h.welcome)
	router.Get("/api/hello", h.hello)
	router.Get("/api/services", h.services)
}

func (h *ContentHandler) welcome(c *fiber.Ctx) error {
	return utils.SendJSON(c, h.service.Welcome())
}

func (h *ContentHandler) hello(c *fiber.Ctx) error {
	return utils.SendJSON(c, h.service.Hello())
}

func (h *ContentHandler) services(c *fiber.Ctx) error {
	return utils.SendJSON(c, h.service.Services())
}
