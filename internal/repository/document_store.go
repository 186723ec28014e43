package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/noah-isme/contractor-site-api/internal/database"
)

// ErrUnsupportedDriver is returned when no document store exists for a connection's driver.
var ErrUnsupportedDriver = errors.New("unsupported document store driver")

// DocumentStore persists schema-flexible documents grouped into named collections.
type DocumentStore interface {
	// Name returns the logical database name.
	Name() string
	// CreateDocument inserts document into collection and returns the generated identifier.
	CreateDocument(ctx context.Context, collection string, document interface{}) (string, error)
	// ListCollectionNames returns the names of the collections that currently exist.
	ListCollectionNames(ctx context.Context) ([]string, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// NewDocumentStore returns the document store matching the connection's backend.
func NewDocumentStore(conn *database.Connection) (DocumentStore, error) {
	if conn == nil {
		return nil, fmt.Errorf("%w: nil connection", ErrUnsupportedDriver)
	}

	switch conn.Driver {
	case database.DriverMongo:
		return NewMongoDocumentStore(conn.Mongo), nil
	case database.DriverPostgres, database.DriverSQLite:
		return NewSQLDocumentStore(conn.SQL, conn.Name), nil
	case database.DriverRedis:
		return NewRedisDocumentStore(conn.Redis, conn.Name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, conn.Driver)
	}
}
