// Package app wires the application together: storage, the document
// database client, the service layer, and the HTTP handlers.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/handlers"
	"github.com/shapidesign/Index-Design-sub000/internal/interfaces"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
	"github.com/shapidesign/Index-Design-sub000/internal/services/catalog"
	"github.com/shapidesign/Index-Design-sub000/internal/services/content"
	"github.com/shapidesign/Index-Design-sub000/internal/services/enrich"
	"github.com/shapidesign/Index-Design-sub000/internal/services/scheduler"
	"github.com/shapidesign/Index-Design-sub000/internal/services/suggest"
	"github.com/shapidesign/Index-Design-sub000/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Services
	NotionClient     *notion.Client
	CatalogService   *catalog.Service
	EnrichEngine     *enrich.Engine
	ContentService   *content.Service
	SuggestService   *suggest.Service
	SchedulerService *scheduler.Service

	// Handlers
	CatalogHandler    *handlers.CatalogHandler
	SuggestionHandler *handlers.SuggestionHandler
	APIHandler        *handlers.APIHandler
}

// New builds the full dependency graph.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	storageManager, err := badger.NewManager(logger, &cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = storageManager

	a.NotionClient = notion.NewClient(cfg.Notion.Token,
		notion.WithVersion(cfg.Notion.Version),
		notion.WithRateLimit(cfg.Notion.RequestsPerSecond),
		notion.WithTimeout(cfg.Notion.RequestTimeout),
		notion.WithLogger(logger),
	)

	a.CatalogService = catalog.NewService(a.NotionClient, cfg, logger)

	clientOpts := []enrich.Option{
		enrich.WithUserAgent(cfg.Enrichment.UserAgent),
		enrich.WithHTTPClient(&http.Client{Timeout: cfg.Enrichment.RequestTimeout}),
	}
	bookLookups := []enrich.BookLookup{
		enrich.NewOpenLibraryClient(clientOpts...),
		enrich.NewGoogleBooksClient(clientOpts...),
	}
	museumLookup := enrich.NewMuseumImageLookup(enrich.NewWikipediaClient(clientOpts...))
	a.EnrichEngine = enrich.NewEngine(
		storageManager.CacheStorage(),
		bookLookups,
		museumLookup,
		cfg.EnrichmentWorkers(),
		logger,
	)

	a.ContentService = content.NewService(a.CatalogService, a.EnrichEngine)
	a.SuggestService = suggest.NewService(a.NotionClient, cfg, logger)
	a.SchedulerService = scheduler.NewService(cfg, a.ContentService, a.SuggestService.Limiter(), logger)

	a.CatalogHandler = handlers.NewCatalogHandler(a.ContentService, cfg, logger)
	a.SuggestionHandler = handlers.NewSuggestionHandler(a.SuggestService, cfg, logger)
	a.APIHandler = handlers.NewAPIHandler(storageManager.CacheStorage())

	logger.Info().Msg("Application initialized")
	return a, nil
}

// Start launches the background scheduler and warms the enrichment cache.
func (a *App) Start() error {
	if err := a.SchedulerService.Start(); err != nil {
		return err
	}

	if a.Config.Notion.Token != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		common.SafeGoWithContext(ctx, a.Logger, "warm-cache", func() {
			defer cancel()
			if err := a.ContentService.Refresh(ctx); err != nil {
				a.Logger.Warn().Err(err).Msg("Initial cache warm-up failed")
			}
		})
	}
	return nil
}

// Close shuts down background work and releases storage.
func (a *App) Close() error {
	a.SchedulerService.Stop()

	if err := a.StorageManager.Close(); err != nil {
		a.Logger.Warn().Err(err).Msg("Storage close failed")
		return err
	}
	a.Logger.Info().Msg("Application closed")
	return nil
}
