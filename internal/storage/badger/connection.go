// Package badger implements the enrichment cache on BadgerDB via
// badgerhold. The default deployment runs in-memory, giving the cache its
// process-start-to-process-end lifecycle; pointing it at a path makes the
// cache survive restarts instead.
package badger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
)

// BadgerDB manages the Badger database connection.
type BadgerDB struct {
	store  *badgerhold.Store
	logger arbor.ILogger
}

// NewBadgerDB opens the cache store. InMemory skips the filesystem
// entirely; otherwise the directory is created as needed.
func NewBadgerDB(logger arbor.ILogger, config *common.CacheConfig) (*BadgerDB, error) {
	options := badgerhold.DefaultOptions
	options.Logger = nil // Disable default badger logger to use arbor

	if config.InMemory {
		options.InMemory = true
		options.Dir = ""
		options.ValueDir = ""
		logger.Debug().Msg("Opening in-memory cache store")
	} else {
		if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		options.Dir = config.Path
		options.ValueDir = config.Path
		logger.Debug().Str("path", config.Path).Msg("Opening cache store")
	}

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &BadgerDB{
		store:  store,
		logger: logger,
	}, nil
}

// Store returns the underlying badgerhold store.
func (b *BadgerDB) Store() *badgerhold.Store {
	return b.store
}

// Close closes the database connection.
func (b *BadgerDB) Close() error {
	if b.store != nil {
		return b.store.Close()
	}
	return nil
}
