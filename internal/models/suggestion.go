package models

// Suggestion is a user-submitted addition request for the index.
// Validation rules live on the struct tags; URL is normalized (https://
// auto-prefix) before validation runs.
type Suggestion struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"required,oneof=book designer museum resource general"`
	Message  string `json:"message" validate:"required,min=5"`
	URL      string `json:"url" validate:"omitempty,url"`
}

// SuggestionCategories is the fixed set of accepted categories, mirrored by
// the oneof validation tag.
var SuggestionCategories = []string{"book", "designer", "museum", "resource", "general"}
