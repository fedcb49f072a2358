package badger

import (
	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger.
type Manager struct {
	db     *BadgerDB
	cache  interfaces.CacheStorage
	logger arbor.ILogger
}

// NewManager opens the store and wires the cache storage.
func NewManager(logger arbor.ILogger, config *common.CacheConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:     db,
		cache:  NewCacheStorage(db, logger),
		logger: logger,
	}

	logger.Info().Bool("in_memory", config.InMemory).Msg("Badger storage manager initialized")
	return manager, nil
}

// CacheStorage returns the image cache storage interface.
func (m *Manager) CacheStorage() interfaces.CacheStorage {
	return m.cache
}

// Close closes the database connection.
func (m *Manager) Close() error {
	return m.db.Close()
}
