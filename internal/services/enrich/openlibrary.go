package enrich

import (
	"context"
	"fmt"
	"net/url"
)

const (
	// DefaultOpenLibraryURL is the Open Library API root.
	DefaultOpenLibraryURL = "https://openlibrary.org"
	// openLibraryCoversURL serves cover images by cover id.
	openLibraryCoversURL = "https://covers.openlibrary.org"
)

// OpenLibraryClient looks up book covers through the Open Library search
// API. It is the primary bibliographic source for book enrichment.
type OpenLibraryClient struct {
	api       apiClient
	coversURL string
}

func NewOpenLibraryClient(opts ...Option) *OpenLibraryClient {
	return &OpenLibraryClient{
		api:       newAPIClient(DefaultOpenLibraryURL, opts),
		coversURL: openLibraryCoversURL,
	}
}

// searchResponse matches search.json, narrowed to the cover lookup.
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Title   string `json:"title"`
		CoverID int    `json:"cover_i"`
	} `json:"docs"`
}

// CoverURL returns the large cover image URL for the best title/author
// match, or "" when no match carries a cover.
func (c *OpenLibraryClient) CoverURL(ctx context.Context, title, author string) (string, error) {
	query := url.Values{}
	query.Set("title", title)
	if author != "" {
		query.Set("author", author)
	}
	query.Set("fields", "title,cover_i")
	query.Set("limit", "3")

	var res searchResponse
	if err := c.api.getJSON(ctx, c.api.baseURL+"/search.json?"+query.Encode(), &res); err != nil {
		return "", err
	}

	for _, doc := range res.Docs {
		if doc.CoverID > 0 {
			return fmt.Sprintf("%s/b/id/%d-L.jpg", c.coversURL, doc.CoverID), nil
		}
	}
	return "", nil
}
