package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type mongoDocumentStore struct {
	db *mongo.Database
}

// NewMongoDocumentStore constructs a document store backed by a MongoDB database.
func NewMongoDocumentStore(db *mongo.Database) DocumentStore {
	return &mongoDocumentStore{db: db}
}

func (s *mongoDocumentStore) Name() string {
	return s.db.Name()
}

func (s *mongoDocumentStore) CreateDocument(ctx context.Context, collection string, document interface{}) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	return insertedIDString(result.InsertedID), nil
}

func (s *mongoDocumentStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	return names, nil
}

func (s *mongoDocumentStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func insertedIDString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
