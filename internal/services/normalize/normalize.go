// Package normalize canonicalizes free text and tokenizes delimited lists.
// Every transformer and the search filter go through these helpers so that
// matching behaves the same regardless of which collection a string came
// from. All functions are pure.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize collapses whitespace runs to a single space and trims.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Fold produces a matching key: normalized, lower-cased, diacritics and
// punctuation stripped. Used where accents and punctuation must not affect
// equality (designer and work names).
func Fold(text string) string {
	decomposed := norm.NFD.String(Normalize(text))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining mark left over from decomposition.
		case unicode.IsPunct(r):
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return Normalize(b.String())
}

// conjunctions are word-level separators treated as list delimiters in
// addition to punctuation. Source text frequently joins items with "and"
// in either language instead of authoring native tags.
var conjunctions = []string{" וגם ", " ו- ", " and ", " & "}

// DefaultDelimiters are the characters TokenizeList splits on when callers
// have no collection-specific set.
const DefaultDelimiters = ";,|"

// TokenizeList splits delimited text into trimmed, non-empty tokens.
// Delimiters is a set of characters; localized conjunction words are always
// treated as delimiters too.
func TokenizeList(text string, delimiters string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if delimiters == "" {
		delimiters = DefaultDelimiters
	}

	for _, conj := range conjunctions {
		text = strings.ReplaceAll(text, conj, ";")
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := Normalize(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
