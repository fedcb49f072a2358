package transform

import (
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
)

// Resource maps a raw resources page into a canonical resource record.
// Pages without a resolvable name map to nil.
func Resource(page notion.Page) *models.Resource {
	name := ResolveText(page.Properties, resourceAliases.name)
	if name == "" {
		return nil
	}
	return &models.Resource{
		ID:          page.ID,
		Name:        name,
		Description: ResolveText(page.Properties, resourceAliases.description),
		Types:       ResolveTagList(page.Properties, resourceAliases.types),
		Tags:        ResolveTagList(page.Properties, resourceAliases.tags),
		Link:        ResolveURL(page.Properties, resourceAliases.link),
		Pricing:     ResolveText(page.Properties, resourceAliases.pricing),
		Image:       ResolveImageURL(page.Properties, resourceAliases.image),
	}
}
