package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/contractor-site-api/internal/dto"
	"github.com/noah-isme/contractor-site-api/internal/models"
	"github.com/noah-isme/contractor-site-api/internal/observability"
	"github.com/noah-isme/contractor-site-api/internal/repository"
)

// ErrStoreUnavailable indicates no document store was configured at startup.
var ErrStoreUnavailable = errors.New("database not available")

// ContactService exposes the contact submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error)
}

type contactService struct {
	repo      repository.ContactRepository
	validator *validator.Validate
	delivery  ContactDelivery
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewContactService constructs a contact submission service.
// repo may be nil when no store is configured; every submission then fails with ErrStoreUnavailable.
func NewContactService(repo repository.ContactRepository, validator *validator.Validate, delivery ContactDelivery, logger zerolog.Logger) ContactService {
	return &contactService{
		repo:      repo,
		validator: validator,
		delivery:  delivery,
		logger:    logger.With().Str("component", "contact_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/contractor-site-api/internal/service/contact"),
	}
}

func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	req = normalizeContactRequest(req)
	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		observability.ContactSubmissions().WithLabelValues("invalid").Inc()
		return dto.ContactResponse{}, err
	}

	if s.repo == nil {
		span.SetStatus(codes.Error, "store unavailable")
		observability.ContactSubmissions().WithLabelValues("error").Inc()
		return dto.ContactResponse{}, ErrStoreUnavailable
	}

	submission := models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := s.repo.Create(ctx, &submission)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.ContactSubmissions().WithLabelValues("error").Inc()
		return dto.ContactResponse{}, err
	}
	span.SetAttributes(attribute.String("contact.id", id))

	if s.delivery != nil {
		if err := s.delivery.Deliver(ctx, id, submission); err != nil {
			span.RecordError(err)
			s.logger.Warn().Err(err).Str("submission_id", id).Msg("contact delivery failed")
		}
	}

	observability.ContactSubmissions().WithLabelValues("ok").Inc()
	s.logger.Info().Str("submission_id", id).Str("email", maskEmailAddress(submission.Email)).Msg("contact submission stored")
	span.SetStatus(codes.Ok, "stored")

	return dto.ContactResponse{Status: "ok", ID: id}, nil
}
