// Package storage persists named blobs of serialized client state.
package storage

import (
	"errors"
	"fmt"

	"github.com/vmunix/flicks/internal/config"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("blob not found")

// Well-known blob keys.
const (
	KeyCache     = "cache_v1"
	KeyFavorites = "favorites"
	KeyRecent    = "recent"
)

// Blobs is a string-keyed store of opaque values.
type Blobs interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open returns the backend named by cfg.Driver.
func Open(cfg config.StorageConfig) (Blobs, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return OpenSQLite(config.ExpandHome(cfg.Path))
	case "bolt":
		return OpenBolt(config.ExpandHome(cfg.Path))
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
