package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/shapidesign/Index-Design-sub000/internal/interfaces"
	"github.com/shapidesign/Index-Design-sub000/internal/models"
)

// CacheStorage implements the image cache on badgerhold. Entries include
// negative results, so "looked up, found nothing" is remembered too.
type CacheStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

func NewCacheStorage(db *BadgerDB, logger arbor.ILogger) interfaces.CacheStorage {
	return &CacheStorage{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a cache entry by lookup key.
func (s *CacheStorage) Get(_ context.Context, key string) (*models.ImageCacheEntry, error) {
	var entry models.ImageCacheEntry
	err := s.db.Store().Get(key, &entry)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}
	return &entry, nil
}

// Set stores a lookup result. An empty URL is a valid "no image found"
// entry.
func (s *CacheStorage) Set(_ context.Context, key, url string) error {
	entry := models.ImageCacheEntry{
		Key:       key,
		URL:       url,
		CreatedAt: time.Now(),
	}
	if err := s.db.Store().Upsert(key, &entry); err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Count returns the number of cached entries, for the status endpoint.
func (s *CacheStorage) Count(_ context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.ImageCacheEntry{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return int(count), nil
}
