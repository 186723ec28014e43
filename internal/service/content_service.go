package service

import (
	"github.com/noah-isme/contractor-site-api/internal/dto"
	"github.com/noah-isme/contractor-site-api/internal/models"
)

const (
	welcomeMessage = "Hello from the contractor site backend!"
	helloMessage   = "Hello from the backend API!"
)

var serviceOfferings = []models.ServiceOffering{
	{
		Title:       "General Contracting",
		Description: "Full-service project management from planning to delivery.",
		Icon:        "Hammer",
	},
	{
		Title:       "Renovations",
		Description: "Residential and commercial renovations with modern finishes.",
		Icon:        "Building",
	},
	{
		Title:       "Electrical & Plumbing",
		Description: "Licensed specialists for safe, code-compliant installs.",
		Icon:        "Wrench",
	},
	{
		Title:       "Custom Fabrication",
		Description: "Custom carpentry, metal, and specialty builds.",
		Icon:        "Saw",
	},
}

// ContentService serves the fixed informational payloads of the public site.
type ContentService interface {
	Welcome() dto.MessageResponse
	Hello() dto.MessageResponse
	Services() dto.ServiceListResponse
}

type contentService struct{}

// NewContentService constructs the static content service.
func NewContentService() ContentService {
	return contentService{}
}

func (contentService) Welcome() dto.MessageResponse {
	return dto.MessageResponse{Message: welcomeMessage}
}

func (contentService) Hello() dto.MessageResponse {
	return dto.MessageResponse{Message: helloMessage}
}

// Services returns a copy so callers cannot mutate the shared listing.
func (contentService) Services() dto.ServiceListResponse {
	services := make([]models.ServiceOffering, len(serviceOfferings))
	copy(services, serviceOfferings)
	return dto.ServiceListResponse{Services: services}
}
