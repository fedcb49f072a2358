package transform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shapidesign/Index-Design-sub000/internal/services/normalize"
)

// PresentDecade is the sentinel decade an open-ended era ("עד היום") maps
// to. Lossy by design: precision beyond "which decade" is not required.
const PresentDecade = 2020

var (
	yearRangeRe = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`)
	numberRe    = regexp.MustCompile(`\d+`)
)

// presentMarkers signal an era running to the present day, in either
// language.
var presentMarkers = []string{"עד היום", "כיום", "present", "today"}

// ParseEra converts free-form era text into a decade pair. Both values are
// nil when no year can be extracted. Two-digit numbers are assumed to be
// 1900s; this fixed assumption can misclassify genuinely ambiguous inputs
// and is kept deliberately — see the decade-normalization note in DESIGN.md.
// Start <= end is not guaranteed for pathological source text.
func ParseEra(era []string) (*int, *int) {
	text := normalize.Normalize(strings.Join(era, " "))
	if text == "" {
		return nil, nil
	}

	// Direct YYYY-YYYY range, rounded down to decades.
	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		start := decadeOf(atoi(m[1]))
		end := decadeOf(atoi(m[2]))
		return &start, &end
	}

	present := containsAny(strings.ToLower(text), presentMarkers)

	var years []int
	for _, raw := range numberRe.FindAllString(text, -1) {
		years = append(years, normalizeYear(atoi(raw)))
	}

	if len(years) == 0 {
		return nil, nil
	}

	start := decadeOf(years[0])
	end := start
	if present {
		end = PresentDecade
	} else if len(years) > 1 {
		end = decadeOf(years[len(years)-1])
	}
	return &start, &end
}

// normalizeYear maps partial year numbers to full years. Values under 100
// are decade shorthand assumed to be 1900s; anything larger is already a
// (possibly partial) year.
func normalizeYear(n int) int {
	if n < 100 {
		return 1900 + n
	}
	return n
}

func decadeOf(year int) int {
	return year / 10 * 10
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
