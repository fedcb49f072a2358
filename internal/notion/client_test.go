package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageJSON(id string) string {
	return fmt.Sprintf(`{"id":%q,"properties":{"Name":{"type":"title","title":[{"plain_text":"record %s"}]}}}`, id, id)
}

func TestQueryAllWalksCursor(t *testing.T) {
	var cursors []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/databases/db-1/query", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.Equal(t, DefaultVersion, r.Header.Get("Notion-Version"))

		var req struct {
			PageSize    int    `json:"page_size"`
			StartCursor string `json:"start_cursor"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, PageSize, req.PageSize)
		cursors = append(cursors, req.StartCursor)

		switch req.StartCursor {
		case "":
			fmt.Fprintf(w, `{"results":[%s,%s],"has_more":true,"next_cursor":"c2"}`, pageJSON("p1"), pageJSON("p2"))
		case "c2":
			fmt.Fprintf(w, `{"results":[%s],"has_more":false,"next_cursor":null}`, pageJSON("p3"))
		default:
			t.Fatalf("unexpected cursor %q", req.StartCursor)
		}
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL), WithRateLimit(1000))
	pages, err := client.QueryAll(context.Background(), "db-1")
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Equal(t, []string{"", "c2"}, cursors, "pagination must be strictly sequential")
	assert.Equal(t, "p1", pages[0].ID)
	assert.Equal(t, "record p1", pages[0].Properties["Name"].PlainText())
}

func TestQueryAllResolvesDataSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/databases/parent-id/query":
			// Parent references are not directly queryable.
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":"validation_error","message":"not a data source"}`))
		case "/databases/parent-id":
			w.Write([]byte(`{"id":"parent-id","data_sources":[{"id":"source-id"}]}`))
		case "/databases/source-id/query":
			fmt.Fprintf(w, `{"results":[%s],"has_more":false}`, pageJSON("p1"))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL), WithRateLimit(1000))
	pages, err := client.QueryAll(context.Background(), "parent-id")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "p1", pages[0].ID)
}

func TestQueryAllRetriesRawWhenResolutionFails(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/databases/db-1/query":
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"code":"service_unavailable","message":"try later"}`))
				return
			}
			fmt.Fprintf(w, `{"results":[%s],"has_more":false}`, pageJSON("p1"))
		case "/databases/db-1":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"object_not_found","message":"no such database"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL), WithRateLimit(1000))
	pages, err := client.QueryAll(context.Background(), "db-1")
	require.NoError(t, err)
	assert.Len(t, pages, 1)
	assert.Equal(t, 2, attempts)
}

func TestQueryAllSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"unauthorized","message":"invalid token"}`))
	}))
	defer server.Close()

	client := NewClient("bad-token", WithBaseURL(server.URL), WithRateLimit(1000))
	_, err := client.QueryAll(context.Background(), "db-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "unauthorized", apiErr.Code)
}

func TestCreatePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/pages", r.URL.Path)

		var req struct {
			Parent     map[string]string        `json:"parent"`
			Properties map[string]PropertyValue `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "suggestions-db", req.Parent["database_id"])
		assert.Equal(t, "הצעה חדשה", req.Properties["Name"].Title[0].Text.Content)

		w.Write([]byte(`{"id":"new-page"}`))
	}))
	defer server.Close()

	client := NewClient("secret", WithBaseURL(server.URL), WithRateLimit(1000))
	err := client.CreatePage(context.Background(), "suggestions-db", map[string]PropertyValue{
		"Name": NewTitleProperty("הצעה חדשה"),
	})
	require.NoError(t, err)
}
