package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/interfaces"
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/services/normalize"
)

// BookLookup is one tier of the book cover lookup chain.
type BookLookup interface {
	CoverURL(ctx context.Context, title, author string) (string, error)
}

// MuseumLookup resolves an image for a museum entry.
type MuseumLookup interface {
	ImageURL(ctx context.Context, entry models.MuseumEntry) (string, error)
}

// BookKey is the cache key of a book cover lookup.
func BookKey(title, author string) string {
	return "book|" + normalize.Fold(title) + "|" + normalize.Fold(author)
}

// MuseumKey is the cache key of a museum image lookup.
func MuseumKey(name string) string {
	return "museum|" + normalize.Fold(name)
}

// Engine fills empty image fields on canonical records. Records that
// already carry an image pass through untouched; the rest go through the
// cache and then the lookup chain, with every outcome — including "no
// image" — memoized so a key is looked up at most once per process.
type Engine struct {
	cache   interfaces.CacheStorage
	books   []BookLookup
	museum  MuseumLookup
	workers int
	logger  arbor.ILogger
}

// NewEngine builds an engine over the given lookup chain. Workers is
// clamped to [1, MaxConcurrency].
func NewEngine(cache interfaces.CacheStorage, books []BookLookup, museum MuseumLookup, workers int, logger arbor.ILogger) *Engine {
	if workers < 1 {
		workers = 1
	}
	if workers > common.MaxConcurrency {
		workers = common.MaxConcurrency
	}
	return &Engine{
		cache:   cache,
		books:   books,
		museum:  museum,
		workers: workers,
		logger:  logger,
	}
}

// Books returns a copy of the input with missing covers filled in.
// result[i] always corresponds to books[i]; completion order never leaks
// into the output.
func (e *Engine) Books(ctx context.Context, books []models.Book) []models.Book {
	out := make([]models.Book, len(books))
	copy(out, books)

	e.run(len(out), func(i int) {
		if out[i].CoverURL != "" {
			return
		}
		key := BookKey(out[i].Title, out[i].Author)
		if url, hit := e.cached(ctx, key); hit {
			out[i].CoverURL = url
			return
		}
		url := e.lookupBook(ctx, out[i])
		e.store(ctx, key, url)
		out[i].CoverURL = url
	})
	return out
}

// Museum returns a copy of the input with missing images filled in,
// preserving input order.
func (e *Engine) Museum(ctx context.Context, entries []models.MuseumEntry) []models.MuseumEntry {
	out := make([]models.MuseumEntry, len(entries))
	copy(out, entries)

	e.run(len(out), func(i int) {
		if out[i].ImageURL != "" {
			return
		}
		key := MuseumKey(out[i].Name)
		if url, hit := e.cached(ctx, key); hit {
			out[i].ImageURL = url
			return
		}

		url, err := e.museum.ImageURL(ctx, out[i])
		if err != nil {
			// Lookup failures are soft: the record stays unenriched and
			// the miss is not cached, so a later run can retry.
			e.logger.Debug().Err(err).Str("name", out[i].Name).Msg("museum image lookup failed")
			return
		}
		e.store(ctx, key, url)
		out[i].ImageURL = url
	})
	return out
}

// lookupBook walks the lookup chain in priority order, short-circuiting on
// the first cover found. Errors from one tier never abort the record; the
// next tier is tried.
func (e *Engine) lookupBook(ctx context.Context, book models.Book) string {
	for _, lookup := range e.books {
		url, err := lookup.CoverURL(ctx, book.Title, book.Author)
		if err != nil {
			e.logger.Debug().Err(err).Str("title", book.Title).Msg("book cover lookup failed")
			continue
		}
		if url != "" {
			return url
		}
	}
	return ""
}

func (e *Engine) cached(ctx context.Context, key string) (string, bool) {
	entry, err := e.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			e.logger.Warn().Err(err).Str("key", key).Msg("image cache read failed")
		}
		return "", false
	}
	return entry.URL, true
}

func (e *Engine) store(ctx context.Context, key, url string) {
	if err := e.cache.Set(ctx, key, url); err != nil {
		e.logger.Warn().Err(err).Str("key", key).Msg("image cache write failed")
	}
}

// run executes work(i) for every index with a bounded worker pool. Workers
// claim indices through an atomic cursor; each result lands in its input
// slot, so output order is independent of completion order.
func (e *Engine) run(n int, work func(int)) {
	if n == 0 {
		return
	}
	workers := e.workers
	if workers > n {
		workers = n
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(cursor.Add(1)) - 1
				if i >= n {
					return
				}
				work(i)
			}
		}()
	}
	wg.Wait()
}
