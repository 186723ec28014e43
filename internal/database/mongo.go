package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// ConnectMongo builds a MongoDB client for uri and returns the named database.
// When name is empty the database from the connection string is used, then defaultDatabaseName.
// mongo.Connect does not perform I/O, so an unreachable server surfaces on first use.
func ConnectMongo(ctx context.Context, uri, name string, timeout time.Duration) (*mongo.Database, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri must not be empty")
	}

	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mongo uri: %w", err)
	}
	if name == "" {
		name = cs.Database
	}
	if name == "" {
		name = defaultDatabaseName
	}

	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetServerSelectionTimeout(timeout).SetConnectTimeout(timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	return client.Database(name), nil
}
