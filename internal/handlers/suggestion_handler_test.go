package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
	"github.com/shapidesign/Index-Design-sub000/internal/services/suggest"
)

type fakeSchemaWriter struct {
	db      *notion.Database
	created int
}

func (f *fakeSchemaWriter) GetDatabase(_ context.Context, _ string) (*notion.Database, error) {
	return f.db, nil
}

func (f *fakeSchemaWriter) CreatePage(_ context.Context, _ string, _ map[string]notion.PropertyValue) error {
	f.created++
	return nil
}

func suggestionDB() *notion.Database {
	return &notion.Database{
		ID: "suggestions-db",
		Properties: map[string]notion.PropertySchema{
			"Name":     {Type: notion.TypeTitle},
			"Email":    {Type: notion.TypeRichText},
			"Category": {Type: notion.TypeSelect},
			"Message":  {Type: notion.TypeRichText},
			"URL":      {Type: notion.TypeURL},
		},
	}
}

func newSuggestionHandler(writer suggest.SchemaWriter, maxRequests int) *SuggestionHandler {
	cfg := handlerConfig()
	cfg.Suggestions.MaxRequests = maxRequests
	logger := common.GetLogger()
	return NewSuggestionHandler(suggest.NewService(writer, cfg, logger), cfg, logger)
}

func postSuggestion(handler *SuggestionHandler, body, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/suggestions", strings.NewReader(body))
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.SubmitHandler(rec, req)
	return rec
}

const validBody = `{"name":"ספר חדש","email":"reader@example.org","category":"book","message":"כדאי להוסיף לאינדקס","url":"example.org"}`

func TestSubmitSuggestion(t *testing.T) {
	writer := &fakeSchemaWriter{db: suggestionDB()}
	handler := newSuggestionHandler(writer, 3)

	rec := postSuggestion(handler, validBody, "10.0.0.1:5000")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, 1, writer.created)
}

func TestSubmitSuggestionValidationError(t *testing.T) {
	writer := &fakeSchemaWriter{db: suggestionDB()}
	handler := newSuggestionHandler(writer, 3)

	rec := postSuggestion(handler, `{"name":"","email":"x","category":"book","message":"hello there"}`, "10.0.0.1:5000")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, ErrCodeValidation, apiErr.Error)
	assert.Zero(t, writer.created, "invalid suggestions must not be written")
}

func TestSubmitSuggestionMalformedBody(t *testing.T) {
	handler := newSuggestionHandler(&fakeSchemaWriter{db: suggestionDB()}, 3)

	rec := postSuggestion(handler, "{not json", "10.0.0.1:5000")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitSuggestionRateLimit(t *testing.T) {
	writer := &fakeSchemaWriter{db: suggestionDB()}
	handler := newSuggestionHandler(writer, 2)

	require.Equal(t, http.StatusOK, postSuggestion(handler, validBody, "10.0.0.1:5000").Code)
	require.Equal(t, http.StatusOK, postSuggestion(handler, validBody, "10.0.0.1:5001").Code)

	// Third request from the same client inside the window: rejected before
	// validation, with even an invalid body.
	rec := postSuggestion(handler, "{not json", "10.0.0.1:5002")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, ErrCodeRateLimited, apiErr.Error)

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, postSuggestion(handler, validBody, "10.0.0.2:5000").Code)
	assert.Equal(t, 3, writer.created)
}

func TestSubmitSuggestionForwardedFor(t *testing.T) {
	handler := newSuggestionHandler(&fakeSchemaWriter{db: suggestionDB()}, 1)

	req := httptest.NewRequest(http.MethodPost, "/suggestions", strings.NewReader(validBody))
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.SubmitHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Same forwarded client is limited even though RemoteAddr differs.
	req = httptest.NewRequest(http.MethodPost, "/suggestions", strings.NewReader(validBody))
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	req.RemoteAddr = "10.9.9.9:1234"
	rec = httptest.NewRecorder()
	handler.SubmitHandler(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSubmitSuggestionSchemaMismatch(t *testing.T) {
	writer := &fakeSchemaWriter{db: &notion.Database{
		ID:         "suggestions-db",
		Properties: map[string]notion.PropertySchema{"Notes": {Type: notion.TypeRichText}},
	}}
	handler := newSuggestionHandler(writer, 3)

	rec := postSuggestion(handler, validBody, "10.0.0.1:5000")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, ErrCodeConfiguration, apiErr.Error)
	assert.Contains(t, apiErr.Details, "Notes", "diagnostics must list available fields")
}
