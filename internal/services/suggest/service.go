// Package suggest handles user-submitted index suggestions: validation,
// per-client rate limiting, and the best-effort write into the suggestions
// collection.
package suggest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
)

// SchemaWriter is the slice of the document database client the write path
// needs.
type SchemaWriter interface {
	GetDatabase(ctx context.Context, id string) (*notion.Database, error)
	CreatePage(ctx context.Context, databaseID string, properties map[string]notion.PropertyValue) error
}

// ValidationError carries the first violated rule as a user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SchemaError means the destination collection is missing its title field,
// so even the best-effort mapping cannot write. Available lists the field
// names the collection does have, for operator debugging.
type SchemaError struct {
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("suggestions collection has no title property; available fields: %s", strings.Join(e.Available, ", "))
}

// Service validates and stores suggestions.
type Service struct {
	writer   SchemaWriter
	config   *common.Config
	validate *validator.Validate
	limiter  *RateLimiter
	logger   arbor.ILogger
}

func NewService(writer SchemaWriter, config *common.Config, logger arbor.ILogger) *Service {
	return &Service{
		writer:   writer,
		config:   config,
		validate: validator.New(),
		limiter:  NewRateLimiter(config.Suggestions.Window, config.Suggestions.MaxRequests),
		logger:   logger,
	}
}

// Limiter exposes the rate limiter for the periodic sweep.
func (s *Service) Limiter() *RateLimiter {
	return s.limiter
}

// Allow reports whether the client may submit another suggestion inside the
// current window. Checked before validation.
func (s *Service) Allow(clientIP string) bool {
	return s.limiter.Allow(clientIP)
}

// Validate normalizes and validates a suggestion in place. A URL without a
// scheme gets https:// prefixed before the url rule runs.
func (s *Service) Validate(suggestion *models.Suggestion) error {
	suggestion.Name = strings.TrimSpace(suggestion.Name)
	suggestion.Email = strings.TrimSpace(suggestion.Email)
	suggestion.Category = strings.ToLower(strings.TrimSpace(suggestion.Category))
	suggestion.Message = strings.TrimSpace(suggestion.Message)
	suggestion.URL = strings.TrimSpace(suggestion.URL)
	if suggestion.URL != "" && !strings.Contains(suggestion.URL, "://") {
		suggestion.URL = "https://" + suggestion.URL
	}

	err := s.validate.Struct(suggestion)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Message: "invalid suggestion"}
	}
	return &ValidationError{
		Field:   strings.ToLower(errs[0].Field()),
		Message: validationMessage(errs[0]),
	}
}

func validationMessage(err validator.FieldError) string {
	switch err.Field() {
	case "Name":
		return "name is required"
	case "Email":
		if err.Tag() == "required" {
			return "email is required"
		}
		return "email is not a valid address"
	case "Category":
		return "category must be one of: " + strings.Join(models.SuggestionCategories, ", ")
	case "Message":
		if err.Tag() == "required" {
			return "message is required"
		}
		return "message must be at least 5 characters"
	case "URL":
		return "url is not a valid link"
	}
	return "invalid suggestion"
}

// Submit writes a validated suggestion into the suggestions collection.
// The destination schema is introspected first: the suggestion name goes
// into the collection's title property, the remaining fields map onto
// same-named properties when they exist, and anything unmapped is appended
// to the message as free text so nothing the user wrote is dropped.
func (s *Service) Submit(ctx context.Context, suggestion models.Suggestion) error {
	databaseID := s.config.Notion.SuggestionsDB
	db, err := s.writer.GetDatabase(ctx, databaseID)
	if err != nil {
		return fmt.Errorf("introspecting suggestions collection: %w", err)
	}

	titleKey := ""
	available := make([]string, 0, len(db.Properties))
	for name, schema := range db.Properties {
		available = append(available, name)
		if schema.Type == notion.TypeTitle {
			titleKey = name
		}
	}
	if titleKey == "" {
		sort.Strings(available)
		return &SchemaError{Available: available}
	}

	props := map[string]notion.PropertyValue{
		titleKey: notion.NewTitleProperty(suggestion.Name),
	}

	var unmapped []string
	mapField := func(key, value string, build func(string) notion.PropertyValue) {
		if value == "" {
			return
		}
		if _, ok := db.Properties[key]; ok {
			props[key] = build(value)
			return
		}
		unmapped = append(unmapped, key+": "+value)
	}

	mapField("Email", suggestion.Email, notion.NewRichTextProperty)
	mapField("Category", suggestion.Category, notion.NewSelectProperty)
	mapField("URL", suggestion.URL, notion.NewURLProperty)

	message := suggestion.Message
	if len(unmapped) > 0 {
		message = message + "\n\n" + strings.Join(unmapped, "\n")
	}
	if _, ok := db.Properties["Message"]; ok {
		props["Message"] = notion.NewRichTextProperty(message)
	} else {
		// No message property either; fold everything into the title so
		// the submission is still recoverable by the operator.
		props[titleKey] = notion.NewTitleProperty(suggestion.Name + ": " + message)
	}

	if err := s.writer.CreatePage(ctx, databaseID, props); err != nil {
		return fmt.Errorf("writing suggestion: %w", err)
	}

	s.logger.Info().Str("category", suggestion.Category).Msg("suggestion stored")
	return nil
}
