package enrich

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/interfaces"
	"github.com/shapidesign/Index-Design-sub000/internal/models"
)

// memoryCache is a test double for the image cache.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (*models.ImageCacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	url, ok := c.entries[key]
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}
	return &models.ImageCacheEntry{Key: key, URL: url}, nil
}

func (c *memoryCache) Set(_ context.Context, key, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = url
	return nil
}

func (c *memoryCache) Count(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), nil
}

// countingBookLookup returns a deterministic cover per title and counts
// calls, with an optional artificial delay to scramble completion order.
type countingBookLookup struct {
	calls atomic.Int64
	delay func(title string) time.Duration
	url   func(title string) string
	err   error
}

func (l *countingBookLookup) CoverURL(_ context.Context, title, _ string) (string, error) {
	l.calls.Add(1)
	if l.delay != nil {
		time.Sleep(l.delay(title))
	}
	if l.err != nil {
		return "", l.err
	}
	if l.url != nil {
		return l.url(title), nil
	}
	return "", nil
}

type staticMuseumLookup struct {
	calls atomic.Int64
	url   string
	err   error
}

func (l *staticMuseumLookup) ImageURL(_ context.Context, _ models.MuseumEntry) (string, error) {
	l.calls.Add(1)
	return l.url, l.err
}

func TestBooksOrderPreserved(t *testing.T) {
	// Later books finish first; the output must still line up with the
	// input by index.
	lookup := &countingBookLookup{
		delay: func(title string) time.Duration {
			if title == "first" {
				return 30 * time.Millisecond
			}
			return 0
		},
		url: func(title string) string { return "https://img.example.org/" + title },
	}
	engine := NewEngine(newMemoryCache(), []BookLookup{lookup}, nil, 4, common.GetLogger())

	books := make([]models.Book, 8)
	books[0] = models.Book{ID: "0", Title: "first"}
	for i := 1; i < len(books); i++ {
		books[i] = models.Book{ID: fmt.Sprint(i), Title: fmt.Sprintf("book-%d", i)}
	}

	out := engine.Books(context.Background(), books)
	require.Len(t, out, len(books))
	for i := range books {
		assert.Equal(t, books[i].ID, out[i].ID, "index %d", i)
		assert.Equal(t, "https://img.example.org/"+books[i].Title, out[i].CoverURL)
	}
}

func TestBooksPassThrough(t *testing.T) {
	lookup := &countingBookLookup{}
	engine := NewEngine(newMemoryCache(), []BookLookup{lookup}, nil, 2, common.GetLogger())

	books := []models.Book{{ID: "1", Title: "has cover", CoverURL: "https://img.example.org/existing.jpg"}}
	out := engine.Books(context.Background(), books)

	assert.Equal(t, "https://img.example.org/existing.jpg", out[0].CoverURL)
	assert.Zero(t, lookup.calls.Load(), "embedded image must not trigger a lookup")
}

func TestBooksCacheEffect(t *testing.T) {
	lookup := &countingBookLookup{
		url: func(string) string { return "https://img.example.org/cover.jpg" },
	}
	engine := NewEngine(newMemoryCache(), []BookLookup{lookup}, nil, 2, common.GetLogger())

	books := []models.Book{{ID: "1", Title: "Grid Systems", Author: "Müller-Brockmann"}}

	first := engine.Books(context.Background(), books)
	second := engine.Books(context.Background(), books)

	assert.Equal(t, int64(1), lookup.calls.Load(), "second pass must be served from cache")
	assert.Equal(t, first[0].CoverURL, second[0].CoverURL)
}

func TestBooksNegativeCache(t *testing.T) {
	lookup := &countingBookLookup{} // never finds a cover
	engine := NewEngine(newMemoryCache(), []BookLookup{lookup}, nil, 1, common.GetLogger())

	books := []models.Book{{ID: "1", Title: "Obscure Zine"}}
	engine.Books(context.Background(), books)
	out := engine.Books(context.Background(), books)

	assert.Equal(t, int64(1), lookup.calls.Load(), "no-image result must be cached too")
	assert.Empty(t, out[0].CoverURL)
}

func TestBooksLookupChainFallback(t *testing.T) {
	primary := &countingBookLookup{err: fmt.Errorf("upstream down")}
	secondary := &countingBookLookup{
		url: func(string) string { return "https://img.example.org/fallback.jpg" },
	}
	engine := NewEngine(newMemoryCache(), []BookLookup{primary, secondary}, nil, 1, common.GetLogger())

	out := engine.Books(context.Background(), []models.Book{{ID: "1", Title: "ספר"}})

	assert.Equal(t, "https://img.example.org/fallback.jpg", out[0].CoverURL)
	assert.Equal(t, int64(1), primary.calls.Load())
	assert.Equal(t, int64(1), secondary.calls.Load())
}

func TestMuseumEnrichment(t *testing.T) {
	lookup := &staticMuseumLookup{url: "https://img.example.org/portrait.jpg"}
	engine := NewEngine(newMemoryCache(), nil, lookup, 2, common.GetLogger())

	entries := []models.MuseumEntry{
		{ID: "1", Name: "דוד טרטקובר"},
		{ID: "2", Name: "כבר יש תמונה", ImageURL: "https://img.example.org/keep.jpg"},
	}

	out := engine.Museum(context.Background(), entries)
	assert.Equal(t, "https://img.example.org/portrait.jpg", out[0].ImageURL)
	assert.Equal(t, "https://img.example.org/keep.jpg", out[1].ImageURL)
	assert.Equal(t, int64(1), lookup.calls.Load())

	// Second pass for the uncached record is served from cache.
	engine.Museum(context.Background(), entries)
	assert.Equal(t, int64(1), lookup.calls.Load())
}

func TestMuseumLookupErrorIsSoft(t *testing.T) {
	lookup := &staticMuseumLookup{err: fmt.Errorf("timeout")}
	engine := NewEngine(newMemoryCache(), nil, lookup, 1, common.GetLogger())

	out := engine.Museum(context.Background(), []models.MuseumEntry{{ID: "1", Name: "מעצב"}})
	assert.Empty(t, out[0].ImageURL)

	// Errors are not cached; a later run retries the lookup.
	engine.Museum(context.Background(), []models.MuseumEntry{{ID: "1", Name: "מעצב"}})
	assert.Equal(t, int64(2), lookup.calls.Load())
}

func TestNewEngineClampsWorkers(t *testing.T) {
	engine := NewEngine(newMemoryCache(), nil, nil, 99, common.GetLogger())
	assert.Equal(t, common.MaxConcurrency, engine.workers)

	engine = NewEngine(newMemoryCache(), nil, nil, 0, common.GetLogger())
	assert.Equal(t, 1, engine.workers)
}
