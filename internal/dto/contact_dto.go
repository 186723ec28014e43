package dto

// ContactRequest defines the expected payload for the contact form endpoint.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message" validate:"required"`
}

// ContactResponse is returned once a submission has been stored.
type ContactResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}
