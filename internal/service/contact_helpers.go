package service

import (
	"strings"

	"github.com/noah-isme/contractor-site-api/internal/dto"
)

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// normalizeEmail trims the address and lower-cases the domain. The local part is kept as typed.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// normalizeContactRequest trims surrounding whitespace. Field content is stored as submitted.
func normalizeContactRequest(req dto.ContactRequest) dto.ContactRequest {
	return dto.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   normalizeEmail(req.Email),
		Phone:   trimOptional(req.Phone),
		Subject: trimOptional(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
}

func maskEmailAddress(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return "***"
	}
	local := []rune(parts[0])
	domain := parts[1]
	if len(local) <= 2 {
		return string(local[:1]) + "***@" + domain
	}
	return string(local[:1]) + "***" + string(local[len(local)-1:]) + "@" + domain
}
