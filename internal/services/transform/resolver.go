// Package transform maps raw property bags into canonical records. Field
// names are not stable across schema edits, so every field resolves through
// an ordered candidate key list: most specific historical name first,
// generic fallback last. Resolution is total over arbitrary input; malformed
// property shapes read as absent, never as errors.
package transform

import (
	"strings"

	"github.com/shapidesign/Index-Design-sub000/internal/notion"
	"github.com/shapidesign/Index-Design-sub000/internal/services/normalize"
)

// ResolveText returns the first non-blank text value among the candidate
// keys, tried in priority order. Empty string means absent, not error.
func ResolveText(props map[string]notion.PropertyValue, candidates []string) string {
	for _, key := range candidates {
		prop, ok := props[key]
		if !ok {
			continue
		}
		if text := normalize.Normalize(prop.PlainText()); text != "" {
			return text
		}
	}
	return ""
}

// ResolveTagList returns the first non-empty tag list among the candidate
// keys. Native multi-select options are used directly; rich text and title
// properties fall back to delimiter tokenization because tags were often
// authored as delimited text before the schema grew native tags.
func ResolveTagList(props map[string]notion.PropertyValue, candidates []string) []string {
	for _, key := range candidates {
		prop, ok := props[key]
		if !ok {
			continue
		}

		if options := prop.Options(); len(options) > 0 {
			tags := make([]string, 0, len(options))
			for _, opt := range options {
				if tag := normalize.Normalize(opt); tag != "" {
					tags = append(tags, tag)
				}
			}
			if len(tags) > 0 {
				return tags
			}
			continue
		}

		if tokens := normalize.TokenizeList(prop.PlainText(), ""); len(tokens) > 0 {
			return tokens
		}
	}
	return nil
}

// ResolveURL returns the first URL value among the candidate keys. Text
// properties holding a pasted link count too.
func ResolveURL(props map[string]notion.PropertyValue, candidates []string) string {
	for _, key := range candidates {
		prop, ok := props[key]
		if !ok {
			continue
		}
		if url := prop.URLValue(); url != "" {
			return url
		}
		if text := strings.TrimSpace(prop.PlainText()); isHTTPURL(text) {
			return text
		}
	}
	return ""
}

// ResolveImageURL returns the first attachment URL among the candidate
// keys, supporting both hosted and externally-linked files. A url-typed
// property pointing at an image works as a fallback.
func ResolveImageURL(props map[string]notion.PropertyValue, candidates []string) string {
	for _, key := range candidates {
		prop, ok := props[key]
		if !ok {
			continue
		}
		if url := prop.FirstFileURL(); url != "" {
			return url
		}
		if url := prop.URLValue(); url != "" {
			return url
		}
	}
	return ""
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
