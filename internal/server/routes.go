package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Collection routes (read path)
	mux.HandleFunc("/books", s.app.CatalogHandler.BooksHandler)
	mux.HandleFunc("/hall-of-fame", s.app.CatalogHandler.HallOfFameHandler)
	mux.HandleFunc("/museum", s.app.CatalogHandler.MuseumHandler)
	mux.HandleFunc("/resources", s.app.CatalogHandler.ResourcesHandler)

	// Suggestion submission (write path)
	mux.HandleFunc("/suggestions", s.app.SuggestionHandler.SubmitHandler)

	// API routes - System
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/status", s.app.APIHandler.StatusHandler)

	// Everything else is a JSON 404
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
