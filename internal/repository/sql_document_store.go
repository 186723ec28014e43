package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/noah-isme/contractor-site-api/internal/models"
)

type sqlDocumentStore struct {
	db   *gorm.DB
	name string
}

// NewSQLDocumentStore constructs a document store that keeps JSON documents in the documents table.
func NewSQLDocumentStore(db *gorm.DB, name string) DocumentStore {
	return &sqlDocumentStore{db: db, name: name}
}

func (s *sqlDocumentStore) Name() string {
	return s.name
}

func (s *sqlDocumentStore) CreateDocument(ctx context.Context, collection string, document interface{}) (string, error) {
	body, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	row := models.StoredDocument{
		ID:         uuid.NewString(),
		Collection: collection,
		Body:       datatypes.JSON(body),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	return row.ID, nil
}

func (s *sqlDocumentStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.StoredDocument{}).
		Distinct().
		Order("collection").
		Pluck("collection", &names).
		Error
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	return names, nil
}

func (s *sqlDocumentStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
