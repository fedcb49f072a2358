// Package enrich fills in missing record images through tiered external
// lookups, memoized in a process-wide cache and bounded by a worker pool.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// apiClient is the shared HTTP plumbing of the lookup clients. Each client
// owns one with its own base URL.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// Option adjusts a lookup client. Shared across clients because they differ
// only in base URL and response shape.
type Option func(*apiClient)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *apiClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *apiClient) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header sent on lookups.
func WithUserAgent(userAgent string) Option {
	return func(c *apiClient) {
		c.userAgent = userAgent
	}
}

// WithRateLimit caps outbound requests per second against the lookup API.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *apiClient) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

func newAPIClient(baseURL string, opts []Option) apiClient {
	c := apiClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: "indexd/1.0",
		limiter:   rate.NewLimiter(rate.Limit(5), 5),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c *apiClient) getJSON(ctx context.Context, url string, target any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
