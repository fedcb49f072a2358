package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/interfaces"
)

func newTestManager(t *testing.T) interfaces.StorageManager {
	t.Helper()
	cfg := &common.CacheConfig{InMemory: true}
	manager, err := NewManager(common.GetLogger(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })
	return manager
}

func TestCacheStorageRoundTrip(t *testing.T) {
	cache := newTestManager(t).CacheStorage()
	ctx := context.Background()

	_, err := cache.Get(ctx, "book|missing|")
	assert.ErrorIs(t, err, interfaces.ErrKeyNotFound)

	require.NoError(t, cache.Set(ctx, "book|grid systems|muller brockmann", "https://img.example.org/cover.jpg"))

	entry, err := cache.Get(ctx, "book|grid systems|muller brockmann")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.org/cover.jpg", entry.URL)
	assert.True(t, entry.Found())
}

func TestCacheStorageNegativeEntry(t *testing.T) {
	cache := newTestManager(t).CacheStorage()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "museum|unknown designer", ""))

	entry, err := cache.Get(ctx, "museum|unknown designer")
	require.NoError(t, err)
	assert.False(t, entry.Found())
}

func TestCacheStorageUpsertAndCount(t *testing.T) {
	cache := newTestManager(t).CacheStorage()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", "a"))
	require.NoError(t, cache.Set(ctx, "k1", "b"))
	require.NoError(t, cache.Set(ctx, "k2", "c"))

	entry, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "b", entry.URL)

	count, err := cache.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
