package transform

import (
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
)

// MuseumEntry maps a raw museum page into a canonical museum record. Pages
// without a resolvable name map to nil.
func MuseumEntry(page notion.Page) *models.MuseumEntry {
	name := ResolveText(page.Properties, museumAliases.name)
	if name == "" {
		return nil
	}
	nameHe, nameEn := AssignBilingual(name)

	return &models.MuseumEntry{
		ID:          page.ID,
		Name:        name,
		NameHe:      nameHe,
		NameEn:      nameEn,
		Description: ResolveText(page.Properties, museumAliases.description),
		Country:     ResolveText(page.Properties, museumAliases.country),
		Type:        ResolveTagList(page.Properties, museumAliases.entryType),
		Tags:        ResolveTagList(page.Properties, museumAliases.tags),
		Era:         ResolveTagList(page.Properties, museumAliases.era),
		FamousWork:  ResolveText(page.Properties, museumAliases.famousWork),
		Quote:       ResolveText(page.Properties, museumAliases.quote),
		Link:        ResolveURL(page.Properties, museumAliases.link),
		ImageURL:    ResolveImageURL(page.Properties, museumAliases.image),
	}
}
