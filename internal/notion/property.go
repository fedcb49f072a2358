package notion

import (
	"strconv"
	"strings"
)

// PropertyType is the runtime type tag a property carries on the wire.
type PropertyType string

const (
	TypeTitle       PropertyType = "title"
	TypeRichText    PropertyType = "rich_text"
	TypeSelect      PropertyType = "select"
	TypeMultiSelect PropertyType = "multi_select"
	TypeURL         PropertyType = "url"
	TypeNumber      PropertyType = "number"
	TypeFiles       PropertyType = "files"
)

// TextContent is the writable body of a rich text fragment.
type TextContent struct {
	Content string `json:"content"`
}

// RichText is a single rich text fragment. PlainText is populated on reads;
// Text is required on writes.
type RichText struct {
	PlainText string       `json:"plain_text,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

// SelectOption is a select or multi-select option.
type SelectOption struct {
	Name string `json:"name"`
}

// HostedFile is a file stored by the document database itself.
type HostedFile struct {
	URL string `json:"url"`
}

// ExternalFile is a file referenced by an external URL.
type ExternalFile struct {
	URL string `json:"url"`
}

// File is a single attachment on a files property. Exactly one of File or
// External is set depending on where the attachment lives.
type File struct {
	Name     string        `json:"name,omitempty"`
	Type     string        `json:"type,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

// PropertyValue is the tagged union for one property of a record. The Type
// discriminator says which value field is populated; all other fields are
// zero. Accessors below are total: any type mismatch yields a zero value,
// never an error, because property keys and types drift across schema edits.
type PropertyValue struct {
	ID          string         `json:"id,omitempty"`
	Type        PropertyType   `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	URL         string         `json:"url,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Files       []File         `json:"files,omitempty"`
}

// PlainText extracts a text rendering of the property. Title and rich text
// fragments are concatenated, select yields the option name, numbers are
// stringified. Unknown or empty properties yield "".
func (p PropertyValue) PlainText() string {
	switch p.Type {
	case TypeTitle:
		return joinFragments(p.Title)
	case TypeRichText:
		return joinFragments(p.RichText)
	case TypeSelect:
		if p.Select != nil {
			return p.Select.Name
		}
	case TypeNumber:
		if p.Number != nil {
			return strconv.FormatFloat(*p.Number, 'f', -1, 64)
		}
	case TypeURL:
		return p.URL
	}
	return ""
}

// Options returns the option names of a multi-select property, or nil for
// any other property type.
func (p PropertyValue) Options() []string {
	if p.Type != TypeMultiSelect || len(p.MultiSelect) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.MultiSelect))
	for _, opt := range p.MultiSelect {
		if opt.Name != "" {
			names = append(names, opt.Name)
		}
	}
	return names
}

// URLValue returns the URL of a url-typed property, or "".
func (p PropertyValue) URLValue() string {
	if p.Type == TypeURL {
		return p.URL
	}
	return ""
}

// FirstFileURL returns the URL of the first attachment on a files property.
// One representative image per record; additional attachments are ignored.
func (p PropertyValue) FirstFileURL() string {
	if p.Type != TypeFiles || len(p.Files) == 0 {
		return ""
	}
	f := p.Files[0]
	if f.File != nil && f.File.URL != "" {
		return f.File.URL
	}
	if f.External != nil && f.External.URL != "" {
		return f.External.URL
	}
	return ""
}

func joinFragments(fragments []RichText) string {
	if len(fragments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, fragment := range fragments {
		if fragment.PlainText != "" {
			b.WriteString(fragment.PlainText)
		} else if fragment.Text != nil {
			b.WriteString(fragment.Text.Content)
		}
	}
	return b.String()
}

// NewTitleProperty builds a writable title property.
func NewTitleProperty(text string) PropertyValue {
	return PropertyValue{
		Type:  TypeTitle,
		Title: []RichText{{Text: &TextContent{Content: text}}},
	}
}

// NewRichTextProperty builds a writable rich text property.
func NewRichTextProperty(text string) PropertyValue {
	return PropertyValue{
		Type:     TypeRichText,
		RichText: []RichText{{Text: &TextContent{Content: text}}},
	}
}

// NewSelectProperty builds a writable select property.
func NewSelectProperty(name string) PropertyValue {
	return PropertyValue{
		Type:   TypeSelect,
		Select: &SelectOption{Name: name},
	}
}

// NewURLProperty builds a writable url property.
func NewURLProperty(url string) PropertyValue {
	return PropertyValue{
		Type: TypeURL,
		URL:  url,
	}
}

// Page is one raw record: an opaque property bag keyed by display-name
// strings. Property keys are NOT stable across schema edits; callers must
// resolve fields through candidate key lists, never a single canonical key.
type Page struct {
	ID         string                   `json:"id"`
	URL        string                   `json:"url,omitempty"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertySchema describes one property of a database schema.
type PropertySchema struct {
	ID   string       `json:"id,omitempty"`
	Name string       `json:"name,omitempty"`
	Type PropertyType `json:"type"`
}

// DataSourceRef points at one queryable partition backing a database.
type DataSourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Database is the metadata of a collection, used for identifier resolution
// and for schema introspection on the suggestion write path.
type Database struct {
	ID          string                    `json:"id"`
	DataSources []DataSourceRef           `json:"data_sources,omitempty"`
	Properties  map[string]PropertySchema `json:"properties,omitempty"`
}
