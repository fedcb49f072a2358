package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
)

// Error codes carried in the machine-readable `error` field.
const (
	ErrCodeConfiguration = "configuration_error"
	ErrCodeUpstream      = "upstream_error"
	ErrCodeValidation    = "validation_error"
	ErrCodeRateLimited   = "rate_limited"
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternal      = "internal_error"
)

// collectionCacheControl advises shared caches to hold successful GET
// responses for a few minutes and serve stale while revalidating.
const collectionCacheControl = "public, s-maxage=300, stale-while-revalidate=600"

// APIError is the structured error payload: a machine-readable code, a
// user-facing Hebrew message, and optionally the underlying error text.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse is the envelope of every collection endpoint.
type ListResponse[T any] struct {
	Results []T `json:"results"`
	Total   int `json:"total"`
}

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		WriteAPIError(w, http.StatusMethodNotAllowed, ErrCodeBadRequest, "השיטה אינה נתמכת", "method not allowed: "+r.Method)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteList writes a collection response with the shared cache hint.
func WriteList[T any](w http.ResponseWriter, results []T) error {
	if results == nil {
		results = []T{}
	}
	w.Header().Set("Cache-Control", collectionCacheControl)
	return WriteJSON(w, http.StatusOK, ListResponse[T]{
		Results: results,
		Total:   len(results),
	})
}

// WriteAPIError writes the structured error payload.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message, details string) error {
	return WriteJSON(w, statusCode, APIError{
		Error:   code,
		Message: message,
		Details: details,
	})
}

// ClientIP extracts the submitting client's address, honoring the first
// entry of X-Forwarded-For when a proxy sits in front.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
