package transform

import (
	"github.com/shapidesign/Index-Design-sub000/internal/models"
	"github.com/shapidesign/Index-Design-sub000/internal/notion"
)

// Designer maps a raw hall of fame page into a canonical designer record.
// Source selects the alias variant of the contributing data source; out of
// range values fall back to the primary variant. Pages without a resolvable
// name map to nil and are excluded before merging, so they can never shadow
// a real record by id.
func Designer(page notion.Page, source int) *models.Designer {
	if source < 0 || source >= len(designerAliases) {
		source = 0
	}
	aliases := designerAliases[source]

	name := ResolveText(page.Properties, aliases.name)
	if name == "" {
		return nil
	}
	nameHe, nameEn := AssignBilingual(name)

	era := ResolveTagList(page.Properties, aliases.era)
	start, end := ParseEra(era)

	return &models.Designer{
		ID:          page.ID,
		Name:        name,
		NameHe:      nameHe,
		NameEn:      nameEn,
		Description: ResolveText(page.Properties, aliases.description),
		Fields:      ResolveTagList(page.Properties, aliases.fields),
		Styles:      ResolveTagList(page.Properties, aliases.styles),
		Era:         era,
		DecadeStart: start,
		DecadeEnd:   end,
		Link:        ResolveURL(page.Properties, aliases.link),
		ImageURL:    ResolveImageURL(page.Properties, aliases.image),
	}
}
