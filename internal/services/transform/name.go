package transform

import (
	"regexp"
	"strings"

	"github.com/shapidesign/Index-Design-sub000/internal/services/normalize"
)

// bilingualNameRe matches "ראשי (Latin)" style names where the trailing
// parenthetical carries the second-language form.
var bilingualNameRe = regexp.MustCompile(`^(.*?)\s*\(([^)]+)\)\s*$`)

// SplitBilingualName separates a combined "primary (secondary)" name into
// its two parts. When no trailing parenthetical is present, the whole text
// is the primary name and the secondary is empty.
func SplitBilingualName(text string) (primary, secondary string) {
	text = normalize.Normalize(text)
	if m := bilingualNameRe.FindStringSubmatch(text); m != nil {
		return normalize.Normalize(m[1]), normalize.Normalize(m[2])
	}
	return text, ""
}

// isHebrew reports whether the text contains any Hebrew letters. Used to
// route a single-language name into the right side of a bilingual pair.
func isHebrew(text string) bool {
	for _, r := range text {
		if r >= 0x0590 && r <= 0x05FF {
			return true
		}
	}
	return false
}

// AssignBilingual splits a combined name and places the parts into
// Hebrew/English slots based on script, so source columns that mix
// directions still land in the right field.
func AssignBilingual(text string) (he, en string) {
	primary, secondary := SplitBilingualName(text)
	if secondary == "" {
		if isHebrew(primary) {
			return primary, ""
		}
		return "", primary
	}
	if isHebrew(primary) {
		return primary, secondary
	}
	return secondary, primary
}

// SplitWorks tokenizes a famous-works field into at most maxWorks titles,
// dropping fragments shorter than two runes left behind by the delimiter
// split.
func SplitWorks(text string, maxWorks int) []string {
	var works []string
	for _, token := range normalize.TokenizeList(text, normalize.DefaultDelimiters) {
		if len([]rune(token)) < 2 {
			continue
		}
		works = append(works, token)
		if len(works) == maxWorks {
			break
		}
	}
	return works
}

// joinNonEmpty is a small helper for building display names out of
// optional bilingual parts.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
