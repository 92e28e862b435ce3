package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source is the five-operation contract the normalization layer consumes.
// Client implements it against the live service; tests substitute fakes.
type Source interface {
	// QueryDatabase returns every row of one database, following pagination.
	QueryDatabase(ctx context.Context, databaseID string) ([]Page, error)

	// PageBlocks returns the top-level blocks of a page body.
	PageBlocks(ctx context.Context, pageID string) ([]Block, error)

	// BlockChildren returns the children of one block (columns, toggles).
	BlockChildren(ctx context.Context, blockID string) ([]Block, error)

	// Page returns a single page's metadata and properties.
	Page(ctx context.Context, pageID string) (*Page, error)

	// DatabaseMeta returns a database's metadata, including its parent.
	DatabaseMeta(ctx context.Context, databaseID string) (*Database, error)
}

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
)

// Client talks to the Notion v1 HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a client authenticated with the given integration token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type pageList struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

type blockList struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// QueryDatabase implements Source.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string) ([]Page, error) {
	var all []Page
	cursor := ""
	for {
		body, err := json.Marshal(queryRequest{StartCursor: cursor, PageSize: 100})
		if err != nil {
			return nil, fmt.Errorf("encoding query request: %w", err)
		}
		var list pageList
		url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, databaseID)
		if err := c.do(ctx, http.MethodPost, url, bytes.NewReader(body), &list); err != nil {
			return nil, fmt.Errorf("querying database %s: %w", databaseID, err)
		}
		all = append(all, list.Results...)
		if !list.HasMore || list.NextCursor == "" {
			return all, nil
		}
		cursor = list.NextCursor
	}
}

// PageBlocks implements Source. Page bodies and block children share the
// same endpoint: a page ID is a valid block ID.
func (c *Client) PageBlocks(ctx context.Context, pageID string) ([]Block, error) {
	return c.BlockChildren(ctx, pageID)
}

// BlockChildren implements Source.
func (c *Client) BlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	var all []Block
	cursor := ""
	for {
		url := fmt.Sprintf("%s/v1/blocks/%s/children?page_size=100", c.baseURL, blockID)
		if cursor != "" {
			url += "&start_cursor=" + cursor
		}
		var list blockList
		if err := c.do(ctx, http.MethodGet, url, nil, &list); err != nil {
			return nil, fmt.Errorf("fetching children of block %s: %w", blockID, err)
		}
		all = append(all, list.Results...)
		if !list.HasMore || list.NextCursor == "" {
			return all, nil
		}
		cursor = list.NextCursor
	}
}

// Page implements Source.
func (c *Client) Page(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	url := fmt.Sprintf("%s/v1/pages/%s", c.baseURL, pageID)
	if err := c.do(ctx, http.MethodGet, url, nil, &page); err != nil {
		return nil, fmt.Errorf("fetching page %s: %w", pageID, err)
	}
	return &page, nil
}

// DatabaseMeta implements Source.
func (c *Client) DatabaseMeta(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	url := fmt.Sprintf("%s/v1/databases/%s", c.baseURL, databaseID)
	if err := c.do(ctx, http.MethodGet, url, nil, &db); err != nil {
		return nil, fmt.Errorf("fetching database %s: %w", databaseID, err)
	}
	return &db, nil
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
