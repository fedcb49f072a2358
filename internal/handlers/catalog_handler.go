package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/services/catalog"
	"github.com/shapidesign/Index-Design-sub000/internal/services/content"
)

// CatalogHandler serves the four read-only collection endpoints.
type CatalogHandler struct {
	content *content.Service
	config  *common.Config
	logger  arbor.ILogger
}

func NewCatalogHandler(contentService *content.Service, config *common.Config, logger arbor.ILogger) *CatalogHandler {
	return &CatalogHandler{
		content: contentService,
		config:  config,
		logger:  logger,
	}
}

// requireCollection rejects the request up front when the secret or the
// collection id is not configured; no fetch is attempted in that state.
func (h *CatalogHandler) requireCollection(w http.ResponseWriter, collectionID string) bool {
	if h.config.Notion.Token == "" {
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeConfiguration,
			"השרת אינו מוגדר כראוי", "notion token is not configured")
		return false
	}
	if collectionID == "" {
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeConfiguration,
			"השרת אינו מוגדר כראוי", "collection id is not configured")
		return false
	}
	return true
}

func (h *CatalogHandler) writeFetchError(w http.ResponseWriter, collection string, err error) {
	h.logger.Error().Err(err).Str("collection", collection).Msg("Collection fetch failed")
	WriteAPIError(w, http.StatusInternalServerError, ErrCodeUpstream,
		"אירעה שגיאה בטעינת הנתונים", err.Error())
}

// BooksHandler handles GET /books?q=&tag=.
func (h *CatalogHandler) BooksHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.requireCollection(w, h.config.Notion.BooksDB) {
		return
	}

	books, err := h.content.Books(r.Context())
	if err != nil {
		h.writeFetchError(w, "books", err)
		return
	}

	filtered := catalog.Filter(books, catalog.Query{
		Text: r.URL.Query().Get("q"),
		Tag:  r.URL.Query().Get("tag"),
	})
	WriteList(w, filtered)
}

// HallOfFameHandler handles GET /hall-of-fame.
func (h *CatalogHandler) HallOfFameHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.requireCollection(w, h.config.Notion.HallOfFameDB) {
		return
	}

	designers, err := h.content.HallOfFame(r.Context())
	if err != nil {
		h.writeFetchError(w, "hall-of-fame", err)
		return
	}
	WriteList(w, designers)
}

// MuseumHandler handles GET /museum.
func (h *CatalogHandler) MuseumHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.requireCollection(w, h.config.Notion.MuseumDB) {
		return
	}

	entries, err := h.content.Museum(r.Context())
	if err != nil {
		h.writeFetchError(w, "museum", err)
		return
	}
	WriteList(w, entries)
}

// ResourcesHandler handles GET /resources?category=&tag=&q=.
func (h *CatalogHandler) ResourcesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.requireCollection(w, h.config.Notion.ResourcesDB) {
		return
	}

	resources, err := h.content.Resources(r.Context())
	if err != nil {
		h.writeFetchError(w, "resources", err)
		return
	}

	resources = catalog.FilterResourcesByCategory(resources, r.URL.Query().Get("category"))
	filtered := catalog.Filter(resources, catalog.Query{
		Text: r.URL.Query().Get("q"),
		Tag:  r.URL.Query().Get("tag"),
	})
	WriteList(w, filtered)
}
