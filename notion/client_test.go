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

func TestQueryDatabasePagination(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/databases/db-1/query", r.URL.Path)

		var req struct {
			StartCursor string `json:"start_cursor"`
			PageSize    int    `json:"page_size"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req.StartCursor)
		assert.Equal(t, 100, req.PageSize)

		w.Header().Set("Content-Type", "application/json")
		if req.StartCursor == "" {
			fmt.Fprint(w, `{
				"results": [{"id": "p1"}, {"id": "p2"}],
				"has_more": true,
				"next_cursor": "cur-2"
			}`)
			return
		}
		fmt.Fprint(w, `{"results": [{"id": "p3"}], "has_more": false, "next_cursor": null}`)
	}))
	defer server.Close()

	c := NewClient("tok", WithBaseURL(server.URL))
	pages, err := c.QueryDatabase(context.Background(), "db-1")
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Equal(t, "p1", pages[0].ID)
	assert.Equal(t, "p3", pages[2].ID)
	assert.Equal(t, []string{"", "cur-2"}, requests)
}

func TestRequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Notion-Version"))
		fmt.Fprint(w, `{"id": "page-1"}`)
	}))
	defer server.Close()

	c := NewClient("secret-token", WithBaseURL(server.URL))
	page, err := c.Page(context.Background(), "page-1")
	require.NoError(t, err)
	assert.Equal(t, "page-1", page.ID)
}

func TestBlockChildrenPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/blocks/b-1/children", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("page_size"))

		if r.URL.Query().Get("start_cursor") == "" {
			fmt.Fprint(w, `{
				"results": [{"id": "c1", "type": "paragraph", "paragraph": {"rich_text": [{"plain_text": "Hi"}]}}],
				"has_more": true,
				"next_cursor": "cur"
			}`)
			return
		}
		fmt.Fprint(w, `{"results": [{"id": "c2", "type": "divider"}], "has_more": false}`)
	}))
	defer server.Close()

	c := NewClient("tok", WithBaseURL(server.URL))
	blocks, err := c.BlockChildren(context.Background(), "b-1")
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	assert.Equal(t, TypeParagraph, blocks[0].Type)
	assert.Equal(t, "Hi", PlainText(blocks[0].RichTextRuns()))
	assert.Equal(t, "divider", blocks[1].Type)
}

func TestPageBlocksSharesChildrenEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/blocks/page-1/children", r.URL.Path)
		fmt.Fprint(w, `{"results": [], "has_more": false}`)
	}))
	defer server.Close()

	c := NewClient("tok", WithBaseURL(server.URL))
	_, err := c.PageBlocks(context.Background(), "page-1")
	require.NoError(t, err)
}

func TestDatabaseMeta(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/databases/db-1", r.URL.Path)
		fmt.Fprint(w, `{"id": "db-1", "parent": {"type": "page_id", "page_id": "host-page"}}`)
	}))
	defer server.Close()

	c := NewClient("tok", WithBaseURL(server.URL))
	db, err := c.DatabaseMeta(context.Background(), "db-1")
	require.NoError(t, err)
	assert.Equal(t, "host-page", db.Parent.PageID)
}

func TestErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object": "error", "status": 404, "message": "Could not find page"}`)
	}))
	defer server.Close()

	c := NewClient("tok", WithBaseURL(server.URL))
	_, err := c.Page(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "Could not find page")
}

func TestPropertyDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "page-1",
			"cover": {"type": "external", "external": {"url": "https://example.com/cover.jpg"}},
			"properties": {
				"Name": {"type": "title", "title": [{"plain_text": "Piece"}]},
				"Index": {"type": "number", "number": 3},
				"Exhibition": {"type": "relation", "relation": [{"id": "ex-1"}]},
				"Current": {"type": "checkbox", "checkbox": true}
			}
		}`)
	}))
	defer server.Close()

	c := NewClient("tok", WithBaseURL(server.URL))
	page, err := c.Page(context.Background(), "page-1")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/cover.jpg", page.Cover.ResolveURL())
	assert.Equal(t, "Piece", PlainText(page.Properties["Name"].Title))
	require.NotNil(t, page.Properties["Index"].Number)
	assert.Equal(t, float64(3), *page.Properties["Index"].Number)
	require.Len(t, page.Properties["Exhibition"].Relation, 1)
	require.NotNil(t, page.Properties["Current"].Checkbox)
	assert.True(t, *page.Properties["Current"].Checkbox)
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient("tok", WithBaseURL(server.URL))
	_, err := c.Page(ctx, "page-1")
	require.Error(t, err)
}
