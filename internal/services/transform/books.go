package transform

import (
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
)

// Book maps a raw page into a canonical book record. Pages without a
// resolvable title are schema noise and map to nil.
func Book(page notion.Page) *models.Book {
	title := ResolveText(page.Properties, bookAliases.title)
	if title == "" {
		return nil
	}
	return &models.Book{
		ID:          page.ID,
		Title:       title,
		Author:      ResolveText(page.Properties, bookAliases.author),
		Year:        ResolveText(page.Properties, bookAliases.year),
		Description: ResolveText(page.Properties, bookAliases.description),
		Tags:        ResolveTagList(page.Properties, bookAliases.tags),
		Link:        ResolveURL(page.Properties, bookAliases.link),
		CoverURL:    ResolveImageURL(page.Properties, bookAliases.cover),
	}
}
