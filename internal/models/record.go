package models

import "strings"

// Canonical records are the stable JSON contract served to the client. Once
// produced by a transformer they are immutable; enrichment only fills an
// empty image field, nothing else is ever mutated.

// Book is the canonical record of the books collection.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
	CoverURL    string   `json:"coverUrl"`
}

// Designer is the canonical record of the hall of fame collection.
// DecadeStart and DecadeEnd are either both nil or both set. Ordering
// between them is not guaranteed for pathological source text.
type Designer struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameHe      string   `json:"nameHe"`
	NameEn      string   `json:"nameEn"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
	Styles      []string `json:"styles"`
	Era         []string `json:"era"`
	DecadeStart *int     `json:"decadeStart"`
	DecadeEnd   *int     `json:"decadeEnd"`
	Link        string   `json:"link"`
	ImageURL    string   `json:"imageUrl"`
}

// MuseumEntry is the canonical record of the museum collection.
type MuseumEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameHe      string   `json:"nameHe"`
	NameEn      string   `json:"nameEn"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	Type        []string `json:"type"`
	Tags        []string `json:"tags"`
	Era         []string `json:"era"`
	FamousWork  string   `json:"famousWork"`
	Quote       string   `json:"quote"`
	Link        string   `json:"link"`
	ImageURL    string   `json:"imageUrl"`
}

// Resource is the canonical record of the resources collection.
type Resource struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Types       []string `json:"types"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
	Pricing     string   `json:"pricing"`
	Image       string   `json:"image"`
}

// Filterable is implemented by canonical records so the query filter can
// match free text and tags without knowing the collection shape.
type Filterable interface {
	FilterText() string
	FilterTags() []string
}

func (b Book) FilterText() string {
	return joinFilterText(b.Title, b.Author, b.Description, b.Tags)
}

func (b Book) FilterTags() []string { return b.Tags }

func (d Designer) FilterText() string {
	return joinFilterText(d.Name, d.NameEn, d.Description, append(append([]string{}, d.Fields...), d.Styles...))
}

func (d Designer) FilterTags() []string {
	tags := make([]string, 0, len(d.Fields)+len(d.Styles))
	tags = append(tags, d.Fields...)
	tags = append(tags, d.Styles...)
	return tags
}

func (m MuseumEntry) FilterText() string {
	return joinFilterText(m.Name, m.NameEn, m.Description, m.Tags)
}

func (m MuseumEntry) FilterTags() []string { return m.Tags }

func (r Resource) FilterText() string {
	return joinFilterText(r.Name, "", r.Description, r.Tags)
}

func (r Resource) FilterTags() []string { return r.Tags }

func joinFilterText(name, secondary, description string, tags []string) string {
	parts := []string{name}
	if secondary != "" {
		parts = append(parts, secondary)
	}
	if description != "" {
		parts = append(parts, description)
	}
	parts = append(parts, tags...)
	return strings.Join(parts, " ")
}
