package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the base URL for the Notion API.
	DefaultBaseURL = "https://api.notion.com/v1"

	// DefaultVersion is the Notion-Version header sent with every request.
	DefaultVersion = "2022-06-28"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 3

	// PageSize is the maximum page size the query endpoint accepts.
	PageSize = 100
)

// Client is a Notion API client.
type Client struct {
	baseURL    string
	token      string
	version    string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithVersion sets the Notion-Version header.
func WithVersion(version string) ClientOption {
	return func(c *Client) {
		c.version = version
	}
}

// WithRateLimit sets the outbound requests-per-second limit.
func WithRateLimit(rps int) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a Notion API client with the given integration token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		version: DefaultVersion,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-success response from the Notion API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryAll retrieves every record of a collection, walking the cursor
// protocol exhaustively. The collection reference may be a directly
// queryable database id or a parent id requiring one extra lookup, so three
// attempts are made in order: direct query, resolve-then-query, and a final
// best-effort query with the original reference when resolution itself
// fails. Any page fetch error aborts the whole walk; partial collections
// would silently under-report.
func (c *Client) QueryAll(ctx context.Context, collectionID string) ([]Page, error) {
	pages, err := c.queryAllPages(ctx, collectionID)
	if err == nil {
		return pages, nil
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("collection_id", collectionID).
			Err(err).
			Msg("Direct query failed, attempting identifier resolution")
	}

	resolved, resolveErr := c.ResolveDataSourceID(ctx, collectionID)
	if resolveErr != nil || resolved == "" || resolved == collectionID {
		// Resolution unavailable: retry the original reference as-is.
		return c.queryAllPages(ctx, collectionID)
	}

	return c.queryAllPages(ctx, resolved)
}

// queryAllPages walks one queryable id page by page. Pagination is strictly
// sequential: the next cursor only exists once the prior page resolves.
func (c *Client) queryAllPages(ctx context.Context, databaseID string) ([]Page, error) {
	var all []Page
	cursor := ""

	for {
		req := queryRequest{PageSize: PageSize, StartCursor: cursor}

		var resp queryResponse
		path := fmt.Sprintf("/databases/%s/query", databaseID)
		if err := c.post(ctx, path, req, &resp); err != nil {
			return nil, fmt.Errorf("query %s: %w", databaseID, err)
		}

		all = append(all, resp.Results...)

		if !resp.HasMore || resp.NextCursor == "" {
			return all, nil
		}
		cursor = resp.NextCursor
	}
}

// ResolveDataSourceID resolves a parent reference to its queryable data
// source id. Databases provisioned under the newer API shape expose their
// partitions as data sources; the first one backs the collection.
func (c *Client) ResolveDataSourceID(ctx context.Context, id string) (string, error) {
	db, err := c.GetDatabase(ctx, id)
	if err != nil {
		return "", err
	}
	if len(db.DataSources) > 0 {
		return db.DataSources[0].ID, nil
	}
	return db.ID, nil
}

// GetDatabase retrieves collection metadata, including the property schema
// used by the suggestion write path.
func (c *Client) GetDatabase(ctx context.Context, id string) (*Database, error) {
	var db Database
	if err := c.get(ctx, fmt.Sprintf("/databases/%s", id), &db); err != nil {
		return nil, err
	}
	return &db, nil
}

type createPageRequest struct {
	Parent     map[string]string        `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

// CreatePage writes a new record into a collection.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue) error {
	req := createPageRequest{
		Parent:     map[string]string{"database_id": databaseID},
		Properties: properties,
	}
	return c.post(ctx, "/pages", req, nil)
}

func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, target)
}

func (c *Client) post(ctx context.Context, path string, body, target interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, target)
}

func (c *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if target == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
