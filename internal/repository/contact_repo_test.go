package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contractor-site-api/internal/models"
)

type documentStoreStub struct {
	collection string
	document   interface{}
	id         string
	err        error
}

func (s *documentStoreStub) Name() string { return "stub" }

func (s *documentStoreStub) CreateDocument(_ context.Context, collection string, document interface{}) (string, error) {
	s.collection = collection
	s.document = document
	return s.id, s.err
}

func (s *documentStoreStub) ListCollectionNames(context.Context) ([]string, error) { return nil, nil }

func (s *documentStoreStub) Ping(context.Context) error { return nil }

func TestContactRepositoryCreateStampsAndUsesContactCollection(t *testing.T) {
	store := &documentStoreStub{id: "doc-1"}
	repo := &contactRepository{store: store, now: func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }}

	submission := &models.ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Need a quote"}
	id, err := repo.Create(context.Background(), submission)
	require.NoError(t, err)
	require.Equal(t, "doc-1", id)
	require.Equal(t, models.ContactCollection, store.collection)
	require.Same(t, submission, store.document)
	require.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), submission.CreatedAt)
	require.Equal(t, submission.CreatedAt, submission.UpdatedAt)
}

func TestContactRepositoryCreatePropagatesErrors(t *testing.T) {
	repo := NewContactRepository(&documentStoreStub{err: errors.New("store offline")})

	_, err := repo.Create(context.Background(), &models.ContactSubmission{Name: "Ada"})
	require.EqualError(t, err, "store offline")
}
