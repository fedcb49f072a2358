package enrich

import (
	"context"
	"net/url"
	"strings"
)

// DefaultWikipediaURL is the encyclopedia REST API root.
const DefaultWikipediaURL = "https://en.wikipedia.org"

// WikipediaClient resolves an article title to its lead image through the
// page summary endpoint.
type WikipediaClient struct {
	api apiClient
}

func NewWikipediaClient(opts ...Option) *WikipediaClient {
	return &WikipediaClient{
		api: newAPIClient(DefaultWikipediaURL, opts),
	}
}

type summaryResponse struct {
	Title         string `json:"title"`
	OriginalImage struct {
		Source string `json:"source"`
	} `json:"originalimage"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// SummaryImage returns the article's lead image URL, preferring the
// original over the thumbnail. "" means the article has no image.
func (c *WikipediaClient) SummaryImage(ctx context.Context, article string) (string, error) {
	slug := url.PathEscape(strings.ReplaceAll(article, " ", "_"))

	var res summaryResponse
	if err := c.api.getJSON(ctx, c.api.baseURL+"/api/rest_v1/page/summary/"+slug, &res); err != nil {
		return "", err
	}

	if res.OriginalImage.Source != "" {
		return res.OriginalImage.Source, nil
	}
	return res.Thumbnail.Source, nil
}
