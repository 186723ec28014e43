package handler

import (
	"errors"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/contractor-site-api/internal/dto"
	"github.com/noah-isme/contractor-site-api/internal/middleware"
)

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// validationDetails converts validator errors into one FieldError per failing field.
func validationDetails(err error) []dto.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]dto.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, dto.FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  validationMessage(fe),
			Type: validationType(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	default:
		return "invalid value"
	}
}

func validationType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "email":
		return "value_error.email"
	default:
		return "value_error"
	}
}

func bodyParseDetails(err error) []dto.FieldError {
	return []dto.FieldError{{
		Loc:  []string{"body"},
		Msg:  truncate(err.Error(), 120),
		Type: "json_invalid",
	}}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
