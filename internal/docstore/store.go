// Package docstore persists whole-document JSON blobs under a small set of
// well-known keys. It is the single persistence surface of the application:
// the backend keeps the full user collection under KeyUsers, the panel keeps
// its session marker under KeySession and the opaque auth token under
// KeyToken.
//
// Several drivers implement the Store interface: an in-memory map, one JSON
// file per key, a SQLite table, a PostgreSQL table and an S3 bucket. The
// driver is selected by configuration through New.
package docstore

import (
	"context"
	"errors"
	"fmt"
)

// Well-known document keys.
const (
	KeyUsers   = "users"
	KeySession = "session"
	KeyToken   = "token"
)

// ErrNoDocument is returned by Load when no document exists under the key.
var ErrNoDocument = errors.New("no document")

// Store reads and writes whole documents. Save replaces the document under
// key atomically from the caller's point of view; partial writes must never
// be observable through Load.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Driver names accepted by New.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Config selects and parameterizes a driver.
type Config struct {
	Driver string

	// file
	Dir string

	// sqlite
	SQLitePath string

	// postgres
	PostgresDSN string

	// s3
	S3User         string
	S3Password     string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// New constructs the Store named by cfg.Driver.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil
	case DriverFile:
		return NewFileStore(cfg.Dir)
	case DriverSQLite:
		return NewSQLiteStore(ctx, cfg.SQLitePath)
	case DriverPostgres:
		return NewPostgresStore(ctx, cfg.PostgresDSN)
	case DriverS3:
		return NewS3Store(ctx, S3Config{
			User:         cfg.S3User,
			Password:     cfg.S3Password,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown docstore driver %q", cfg.Driver)
	}
}
