package enrich

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// DefaultGoogleBooksURL is the Google Books volumes API root.
const DefaultGoogleBooksURL = "https://www.googleapis.com"

// GoogleBooksClient looks up book covers through the Google Books volumes
// API. It is the secondary source, tried when Open Library has no cover.
type GoogleBooksClient struct {
	api apiClient
}

func NewGoogleBooksClient(opts ...Option) *GoogleBooksClient {
	return &GoogleBooksClient{
		api: newAPIClient(DefaultGoogleBooksURL, opts),
	}
}

// imageLinks carries every cover variant the API may return. Preference
// runs largest first.
type imageLinks struct {
	ExtraLarge     string `json:"extraLarge"`
	Large          string `json:"large"`
	Medium         string `json:"medium"`
	Small          string `json:"small"`
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

func (l imageLinks) best() string {
	for _, candidate := range []string{l.ExtraLarge, l.Large, l.Medium, l.Small, l.Thumbnail, l.SmallThumbnail} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			ImageLinks imageLinks `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// CoverURL returns the largest available cover variant for the best
// title/author match, upgrading insecure image URLs to https. "" means no
// match carried an image.
func (c *GoogleBooksClient) CoverURL(ctx context.Context, title, author string) (string, error) {
	term := fmt.Sprintf("intitle:%q", title)
	if author != "" {
		term += fmt.Sprintf(" inauthor:%q", author)
	}

	query := url.Values{}
	query.Set("q", term)
	query.Set("maxResults", "3")

	var res volumesResponse
	if err := c.api.getJSON(ctx, c.api.baseURL+"/books/v1/volumes?"+query.Encode(), &res); err != nil {
		return "", err
	}

	for _, item := range res.Items {
		if best := item.VolumeInfo.ImageLinks.best(); best != "" {
			return secureURL(best), nil
		}
	}
	return "", nil
}

// secureURL upgrades http image links to https. The image API hands out
// insecure URLs that mixed-content policies would block in the browser.
func secureURL(imageURL string) string {
	if rest, ok := strings.CutPrefix(imageURL, "http://"); ok {
		return "https://" + rest
	}
	return imageURL
}
