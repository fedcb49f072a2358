package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/interfaces"
)

type APIHandler struct {
	cache  interfaces.CacheStorage
	logger arbor.ILogger
}

func NewAPIHandler(cache interfaces.CacheStorage) *APIHandler {
	return &APIHandler{
		cache:  cache,
		logger: common.GetLogger(),
	}
}

// VersionHandler returns version information
func (h *APIHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version":    common.GetVersion(),
		"build":      common.GetBuild(),
		"git_commit": common.GetGitCommit(),
	})
}

// HealthHandler returns health check status
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// StatusHandler reports runtime state, currently the enrichment cache size.
func (h *APIHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cacheEntries, err := h.cache.Count(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Cache count failed")
		cacheEntries = -1
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"version":       common.GetVersion(),
		"cache_entries": cacheEntries,
		"goroutines":    common.GetGoroutineCount(),
	})
}

// NotFoundHandler handles 404 errors with JSON response
func (h *APIHandler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteAPIError(w, http.StatusNotFound, ErrCodeNotFound,
		"הנתיב המבוקש אינו קיים", "no such endpoint: "+r.URL.Path)
}
