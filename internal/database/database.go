package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/noah-isme/contractor-site-api/internal/models"
)

const defaultDatabaseName = "site"

// ErrUnsupportedScheme is returned when the connection string names an unknown backend.
var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// Driver identifies the backend behind a Connection.
type Driver string

const (
	DriverMongo    Driver = "mongo"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverRedis    Driver = "redis"
)

// Options describes how to reach the document store.
type Options struct {
	URL     string
	Name    string
	Timeout time.Duration
}

// Connection holds the single process-wide handle to the configured backend.
// Exactly one of Mongo, SQL or Redis is set, according to Driver.
type Connection struct {
	Driver Driver
	Name   string
	Mongo  *mongo.Database
	SQL    *gorm.DB
	Redis  *redis.Client
}

// Open connects to the backend selected by the scheme of opts.URL.
func Open(ctx context.Context, opts Options) (*Connection, error) {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return nil, fmt.Errorf("database url must not be empty")
	}

	driver, err := DriverFor(url)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(opts.Name)
	conn := &Connection{Driver: driver, Name: name}

	switch driver {
	case DriverMongo:
		db, err := ConnectMongo(ctx, url, name, opts.Timeout)
		if err != nil {
			return nil, err
		}
		conn.Mongo = db
		conn.Name = db.Name()
	case DriverPostgres:
		db, err := ConnectPostgres(url)
		if err != nil {
			return nil, err
		}
		conn.SQL = db
	case DriverSQLite:
		db, err := ConnectSQLite(sqlitePath(url))
		if err != nil {
			return nil, err
		}
		conn.SQL = db
	case DriverRedis:
		client, err := ConnectRedis(url)
		if err != nil {
			return nil, err
		}
		conn.Redis = client
	}

	if conn.SQL != nil {
		if err := conn.SQL.WithContext(ctx).AutoMigrate(&models.StoredDocument{}); err != nil {
			return nil, fmt.Errorf("failed to migrate documents table: %w", err)
		}
	}

	if conn.Name == "" {
		conn.Name = defaultDatabaseName
	}

	return conn, nil
}

// DriverFor maps a connection string to its backend.
func DriverFor(url string) (Driver, error) {
	lower := strings.ToLower(strings.TrimSpace(url))
	switch {
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return DriverMongo, nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"):
		return DriverSQLite, nil
	case strings.HasPrefix(lower, "redis://"), strings.HasPrefix(lower, "rediss://"):
		return DriverRedis, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, schemeOf(url))
	}
}

// Close releases the underlying client.
func (c *Connection) Close(ctx context.Context) error {
	if c == nil {
		return nil
	}

	switch {
	case c.Mongo != nil:
		return c.Mongo.Client().Disconnect(ctx)
	case c.SQL != nil:
		sqlDB, err := c.SQL.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	case c.Redis != nil:
		return c.Redis.Close()
	}

	return nil
}

func sqlitePath(url string) string {
	if strings.HasPrefix(strings.ToLower(url), "sqlite://") {
		return url[len("sqlite://"):]
	}
	return url
}

func schemeOf(url string) string {
	if scheme, _, ok := strings.Cut(url, "://"); ok {
		return scheme
	}
	if scheme, _, ok := strings.Cut(url, ":"); ok {
		return scheme
	}
	return url
}
