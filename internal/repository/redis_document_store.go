package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Documents live at "<name>:<collection>:<id>"; collection names are kept in the set "<name>:collections".
type redisDocumentStore struct {
	client *redis.Client
	name   string
}

// NewRedisDocumentStore constructs a document store backed by Redis string keys.
func NewRedisDocumentStore(client *redis.Client, name string) DocumentStore {
	return &redisDocumentStore{client: client, name: name}
}

func (s *redisDocumentStore) Name() string {
	return s.name
}

func (s *redisDocumentStore) CreateDocument(ctx context.Context, collection string, document interface{}) (string, error) {
	body, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := uuid.NewString()
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.documentKey(collection, id), body, 0)
		pipe.SAdd(ctx, s.collectionsKey(), collection)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	return id, nil
}

func (s *redisDocumentStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.collectionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

func (s *redisDocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisDocumentStore) documentKey(collection, id string) string {
	return fmt.Sprintf("%s:%s:%s", s.name, collection, id)
}

func (s *redisDocumentStore) collectionsKey() string {
	return s.name + ":collections"
}
