// Package docstore persists named documents (the owner and item collections)
// to interchangeable backends.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Driver identifies a concrete backend implementation.
type Driver string

const (
	DriverFile   Driver = "file"   // one file per document (default)
	DriverMemory Driver = "memory" // in-memory (tests)
	DriverSQLite Driver = "sqlite" // documents table in a SQLite database
	DriverS3     Driver = "s3"     // S3 / MinIO compatible object storage
	DriverRedis  Driver = "redis"  // one key per document
)

// Drivers lists every supported driver.
var Drivers = []Driver{DriverFile, DriverMemory, DriverSQLite, DriverS3, DriverRedis}

// ErrNotExist is returned by Read when the document has never been written.
var ErrNotExist = errors.New("docstore: document does not exist")

// Backend reads and writes whole documents by name.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	Driver() Driver
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver     Driver
	Dir        string // file driver
	SQLitePath string // sqlite driver
	S3         S3Config
	Redis      RedisConfig
}

// Open constructs the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Driver {
	case DriverFile, "":
		return NewFile(cfg.Dir)
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(ctx, cfg.SQLitePath)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	case DriverRedis:
		return NewRedis(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown document backend %q", cfg.Driver)
	}
}

// ParseDriver validates a driver name.
func ParseDriver(s string) (Driver, error) {
	for _, d := range Drivers {
		if string(d) == strings.ToLower(s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown document backend %q", s)
}

// validateName rejects names that could escape a backend's namespace.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty document name")
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid document name %q", name)
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid document name %q", name)
	}
	return nil
}
