package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/contractor-site-api/internal/models"
)

// ContactDelivery forwards a stored submission to whoever handles enquiries.
type ContactDelivery interface {
	Deliver(ctx context.Context, id string, submission models.ContactSubmission) error
}

// LogContactDelivery is a basic provider that logs submissions.
type LogContactDelivery struct {
	logger zerolog.Logger
}

// NewLogContactDelivery constructs a logging provider.
func NewLogContactDelivery(logger zerolog.Logger) *LogContactDelivery {
	return &LogContactDelivery{logger: logger.With().Str("component", "contact_delivery").Logger()}
}

// Deliver logs the submission and returns nil to indicate success.
func (l *LogContactDelivery) Deliver(_ context.Context, id string, submission models.ContactSubmission) error {
	l.logger.Info().
		Str("submission_id", id).
		Str("email", maskEmailAddress(submission.Email)).
		Msg("contact submission delivered to inbox")
	return nil
}

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// ContactSubmittedEvent is the message published for every stored submission.
type ContactSubmittedEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Subject     *string   `json:"subject,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NATSContactDelivery publishes submissions on a NATS subject.
type NATSContactDelivery struct {
	publisher Publisher
	subject   string
	logger    zerolog.Logger
}

// NewNATSContactDelivery constructs a delivery that publishes to subject.
func NewNATSContactDelivery(publisher Publisher, subject string, logger zerolog.Logger) *NATSContactDelivery {
	return &NATSContactDelivery{
		publisher: publisher,
		subject:   subject,
		logger:    logger.With().Str("component", "contact_delivery").Str("subject", subject).Logger(),
	}
}

// Deliver publishes the submission as a ContactSubmittedEvent.
func (n *NATSContactDelivery) Deliver(_ context.Context, id string, submission models.ContactSubmission) error {
	payload, err := json.Marshal(ContactSubmittedEvent{
		ID:          id,
		Name:        submission.Name,
		Email:       submission.Email,
		Phone:       submission.Phone,
		Subject:     submission.Subject,
		Message:     submission.Message,
		SubmittedAt: submission.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode contact event: %w", err)
	}

	if err := n.publisher.Publish(n.subject, payload); err != nil {
		return fmt.Errorf("publish contact event: %w", err)
	}

	n.logger.Debug().Str("submission_id", id).Msg("contact submission published")
	return nil
}
