package repository

import (
	"context"
	"time"

	"github.com/noah-isme/contractor-site-api/internal/models"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, submission *models.ContactSubmission) (string, error)
}

type contactRepository struct {
	store DocumentStore
	now   func() time.Time
}

// NewContactRepository constructs a repository that writes to the contact collection.
func NewContactRepository(store DocumentStore) ContactRepository {
	return &contactRepository{store: store, now: time.Now}
}

func (r *contactRepository) Create(ctx context.Context, submission *models.ContactSubmission) (string, error) {
	submission.Stamp(r.now())
	return r.store.CreateDocument(ctx, models.ContactCollection, submission)
}
