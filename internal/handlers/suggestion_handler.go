package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/services/suggest"
)

// SuggestionHandler serves POST /suggestions.
type SuggestionHandler struct {
	suggest *suggest.Service
	config  *common.Config
	logger  arbor.ILogger
}

func NewSuggestionHandler(suggestService *suggest.Service, config *common.Config, logger arbor.ILogger) *SuggestionHandler {
	return &SuggestionHandler{
		suggest: suggestService,
		config:  config,
		logger:  logger,
	}
}

// SubmitHandler accepts a suggestion. The rate limit is checked before
// validation, so abusive clients cannot burn validation work either.
func (h *SuggestionHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if h.config.Notion.Token == "" || h.config.Notion.SuggestionsDB == "" {
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeConfiguration,
			"השרת אינו מוגדר כראוי", "suggestions collection is not configured")
		return
	}

	clientIP := ClientIP(r)
	if !h.suggest.Allow(clientIP) {
		h.logger.Warn().Str("client", clientIP).Msg("Suggestion rate limit exceeded")
		WriteAPIError(w, http.StatusTooManyRequests, ErrCodeRateLimited,
			"נשלחו יותר מדי הצעות, נסו שוב מאוחר יותר", "rate limit exceeded")
		return
	}

	var suggestion models.Suggestion
	if err := json.NewDecoder(r.Body).Decode(&suggestion); err != nil {
		WriteAPIError(w, http.StatusBadRequest, ErrCodeBadRequest,
			"הבקשה אינה תקינה", "invalid request body: "+err.Error())
		return
	}

	if err := h.suggest.Validate(&suggestion); err != nil {
		WriteAPIError(w, http.StatusBadRequest, ErrCodeValidation,
			"ההצעה אינה תקינה", err.Error())
		return
	}

	if err := h.suggest.Submit(r.Context(), suggestion); err != nil {
		var schemaErr *suggest.SchemaError
		if errors.As(err, &schemaErr) {
			h.logger.Error().Err(err).Msg("Suggestions collection schema mismatch")
			WriteAPIError(w, http.StatusInternalServerError, ErrCodeConfiguration,
				"השרת אינו מוגדר כראוי", err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("Suggestion write failed")
		WriteAPIError(w, http.StatusInternalServerError, ErrCodeUpstream,
			"שליחת ההצעה נכשלה, נסו שוב", err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
