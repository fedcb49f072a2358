// Package content is the full read pipeline: fetch and merge a collection,
// then run image enrichment over it. Handlers and the background refresh
// both go through here.
package content

import (
	"context"
	"errors"

	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/services/catalog"
	"github.com/shapidesign/Index-Design-sub000/internal/services/enrich"
)

type Service struct {
	catalog *catalog.Service
	engine  *enrich.Engine
}

func NewService(catalogService *catalog.Service, engine *enrich.Engine) *Service {
	return &Service{
		catalog: catalogService,
		engine:  engine,
	}
}

// Books fetches and enriches the book collection.
func (s *Service) Books(ctx context.Context) ([]models.Book, error) {
	books, err := s.catalog.Books(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Books(ctx, books), nil
}

// HallOfFame fetches the merged designer collection. Designer portraits
// come from the records themselves; there is no external lookup tier.
func (s *Service) HallOfFame(ctx context.Context) ([]models.Designer, error) {
	return s.catalog.HallOfFame(ctx)
}

// Museum fetches and enriches the museum collection.
func (s *Service) Museum(ctx context.Context) ([]models.MuseumEntry, error) {
	entries, err := s.catalog.Museum(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Museum(ctx, entries), nil
}

// Resources fetches the resource collection.
func (s *Service) Resources(ctx context.Context) ([]models.Resource, error) {
	return s.catalog.Resources(ctx)
}

// Refresh walks every collection once, populating the enrichment cache
// ahead of user traffic. Collection failures are collected rather than
// short-circuiting, so one broken collection does not starve the rest.
func (s *Service) Refresh(ctx context.Context) error {
	var errs []error
	if _, err := s.Books(ctx); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.HallOfFame(ctx); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.Museum(ctx); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.Resources(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
