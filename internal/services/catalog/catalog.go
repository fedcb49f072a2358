// Package catalog orchestrates collection fetches: it walks the raw
// collections, transforms pages into canonical records, and merges
// multi-source collections into a single deduplicated list.
package catalog

import (
	"context"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
	"github.com/shapidesign/Index-Design-sub000/internal/services/transform"
)

// Querier is the slice of the document database client the catalog needs.
type Querier interface {
	QueryAll(ctx context.Context, databaseID string) ([]notion.Page, error)
}

// Service fetches and transforms the four content collections.
type Service struct {
	client Querier
	config *common.Config
	logger arbor.ILogger
}

func NewService(client Querier, config *common.Config, logger arbor.ILogger) *Service {
	return &Service{
		client: client,
		config: config,
		logger: logger,
	}
}

// Books returns the canonical book list.
func (s *Service) Books(ctx context.Context) ([]models.Book, error) {
	pages, err := s.client.QueryAll(ctx, s.config.Notion.BooksDB)
	if err != nil {
		return nil, err
	}

	books := make([]models.Book, 0, len(pages))
	for _, page := range pages {
		if book := transform.Book(page); book != nil {
			books = append(books, *book)
		}
	}
	s.logger.Debug().Int("pages", len(pages)).Int("books", len(books)).Msg("books collection transformed")
	return books, nil
}

// HallOfFame returns the merged designer list. The primary source is always
// queried; the secondary source joins the merge only when configured. Both
// sources are fetched concurrently and deduplicated by id, with the
// earliest-listed source winning and first-seen order preserved.
func (s *Service) HallOfFame(ctx context.Context) ([]models.Designer, error) {
	sources := []string{s.config.Notion.HallOfFameDB}
	if s.config.Notion.HallOfFameExtraDB != "" {
		sources = append(sources, s.config.Notion.HallOfFameExtraDB)
	}

	perSource := make([][]models.Designer, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, databaseID := range sources {
		wg.Add(1)
		go func(i int, databaseID string) {
			defer wg.Done()
			pages, err := s.client.QueryAll(ctx, databaseID)
			if err != nil {
				errs[i] = err
				return
			}
			designers := make([]models.Designer, 0, len(pages))
			for _, page := range pages {
				if d := transform.Designer(page, i); d != nil {
					designers = append(designers, *d)
				}
			}
			perSource[i] = designers
		}(i, databaseID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := mergeDesigners(perSource)
	s.logger.Debug().Int("sources", len(sources)).Int("designers", len(merged)).Msg("hall of fame merged")
	return merged, nil
}

// mergeDesigners concatenates source results in configured order, keeping
// the first record seen for each id.
func mergeDesigners(perSource [][]models.Designer) []models.Designer {
	var total int
	for _, designers := range perSource {
		total += len(designers)
	}

	seen := make(map[string]struct{}, total)
	merged := make([]models.Designer, 0, total)
	for _, designers := range perSource {
		for _, d := range designers {
			if _, dup := seen[d.ID]; dup {
				continue
			}
			seen[d.ID] = struct{}{}
			merged = append(merged, d)
		}
	}
	return merged
}

// Museum returns the canonical museum list.
func (s *Service) Museum(ctx context.Context) ([]models.MuseumEntry, error) {
	pages, err := s.client.QueryAll(ctx, s.config.Notion.MuseumDB)
	if err != nil {
		return nil, err
	}

	entries := make([]models.MuseumEntry, 0, len(pages))
	for _, page := range pages {
		if entry := transform.MuseumEntry(page); entry != nil {
			entries = append(entries, *entry)
		}
	}
	s.logger.Debug().Int("pages", len(pages)).Int("entries", len(entries)).Msg("museum collection transformed")
	return entries, nil
}

// Resources returns the canonical resource list.
func (s *Service) Resources(ctx context.Context) ([]models.Resource, error) {
	pages, err := s.client.QueryAll(ctx, s.config.Notion.ResourcesDB)
	if err != nil {
		return nil, err
	}

	resources := make([]models.Resource, 0, len(pages))
	for _, page := range pages {
		if resource := transform.Resource(page); resource != nil {
			resources = append(resources, *resource)
		}
	}
	s.logger.Debug().Int("pages", len(pages)).Int("resources", len(resources)).Msg("resources collection transformed")
	return resources, nil
}
