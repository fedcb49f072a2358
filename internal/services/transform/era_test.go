package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEra(t *testing.T) {
	intp := func(n int) *int { return &n }

	tests := []struct {
		name  string
		era   []string
		start *int
		end   *int
	}{
		{
			name:  "explicit year range",
			era:   []string{"1950-1990"},
			start: intp(1950),
			end:   intp(1990),
		},
		{
			name:  "hebrew decade shorthand range",
			era:   []string{"שנות ה-50 עד ה-90"},
			start: intp(1950),
			end:   intp(1990),
		},
		{
			name:  "open ended era maps to present decade",
			era:   []string{"שנות ה-2010 עד היום"},
			start: intp(2010),
			end:   intp(2020),
		},
		{
			name:  "english present marker",
			era:   []string{"1980s to present"},
			start: intp(1980),
			end:   intp(2020),
		},
		{
			name:  "single decade",
			era:   []string{"שנות ה-60"},
			start: intp(1960),
			end:   intp(1960),
		},
		{
			name:  "single full year",
			era:   []string{"1975"},
			start: intp(1970),
			end:   intp(1970),
		},
		{
			name: "empty",
			era:  nil,
		},
		{
			name: "no digits",
			era:  []string{"תקופה לא ידועה"},
		},
		{
			name: "present marker without a year",
			era:  []string{"עד היום"},
		},
		{
			name:  "range with en dash and spaces",
			era:   []string{"1923 – 1987"},
			start: intp(1920),
			end:   intp(1980),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ParseEra(tt.era)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
