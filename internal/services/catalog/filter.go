package catalog

import (
	"strings"

	"github.com/shapidesign/Index-Design-sub000/internal/models"
)

// Query carries the optional filter parameters of a collection request.
// Empty fields do not constrain; set fields compose as logical AND.
type Query struct {
	Text string
	Tag  string
}

// Filter post-processes a canonical record list against the query. Tag
// matching is a case-insensitive substring test against any tag; text
// matching is a case-insensitive substring test against the record's
// searchable text. No ranking happens here.
func Filter[T models.Filterable](records []T, q Query) []T {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	tag := strings.ToLower(strings.TrimSpace(q.Tag))
	if text == "" && tag == "" {
		return records
	}

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if tag != "" && !matchesTag(record.FilterTags(), tag) {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(record.FilterText()), text) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// FilterResourcesByCategory narrows resources to those whose type list
// matches the category, case-insensitive substring. Category is the
// resources collection's extra facet, distinct from tags.
func FilterResourcesByCategory(resources []models.Resource, category string) []models.Resource {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return resources
	}

	filtered := make([]models.Resource, 0, len(resources))
	for _, resource := range resources {
		if matchesTag(resource.Types, category) {
			filtered = append(filtered, resource)
		}
	}
	return filtered
}

func matchesTag(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
