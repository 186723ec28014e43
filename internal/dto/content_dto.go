package dto

import "github.com/noah-isme/contractor-site-api/internal/models"

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ServiceListResponse lists the services offered on the public site.
type ServiceListResponse struct {
	Services []models.ServiceOffering `json:"services"`
}
