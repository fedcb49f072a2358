package models

import "time"

// ImageCacheEntry memoizes one enrichment lookup. Negative results are
// stored too (URL empty): a repeat miss would otherwise trigger the same
// futile network round trips on every request.
type ImageCacheEntry struct {
	Key       string    `json:"key" badgerhold:"key"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Found reports whether the lookup produced an image URL.
func (e ImageCacheEntry) Found() bool {
	return e.URL != ""
}
