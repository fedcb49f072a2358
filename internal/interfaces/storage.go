package interfaces

import (
	"context"
	"errors"

	"github.com/shapidesign/Index-Design-sub000/internal/models"
)

// ErrKeyNotFound is returned when a cache key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// CacheStorage is the process-wide enrichment cache. Entries live from
// process start to process end (in-memory mode) and are never invalidated;
// a stale "not found" only costs the no-image UI state.
type CacheStorage interface {
	// Get returns the entry for a normalized lookup key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (*models.ImageCacheEntry, error)

	// Set stores a lookup result, including negative results (empty URL).
	Set(ctx context.Context, key string, url string) error

	// Count returns the number of cached entries.
	Count(ctx context.Context) (int, error)
}

// StorageManager owns the storage layer lifecycle.
type StorageManager interface {
	CacheStorage() CacheStorage
	Close() error
}
