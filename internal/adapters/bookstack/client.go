// Package bookstack implements ports.ContentClient against the BookStack
// REST API: token auth, JSON entity calls and multipart asset uploads.
package bookstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"

	"vaultstack/internal/domain"
	"vaultstack/internal/ports"
)

// Config carries the connection settings for one BookStack instance.
type Config struct {
	URL         string
	TokenID     string
	TokenSecret string

	Timeout    time.Duration
	MaxRetries uint64
	Logger     hclog.Logger
}

// Client talks to a BookStack instance. Network errors and 5xx answers
// are retried with exponential backoff; 4xx answers fail immediately.
type Client struct {
	baseURL    string
	apiURL     string
	auth       string
	httpClient *http.Client
	log        hclog.Logger
	maxRetries uint64
}

// Ensure Client implements the full diagnostic surface
var _ ports.DiagnosticClient = (*Client)(nil)

// New creates a BookStack client.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	base := strings.TrimRight(cfg.URL, "/")
	return &Client{
		baseURL:    base,
		apiURL:     base + "/api",
		auth:       fmt.Sprintf("Token %s:%s", cfg.TokenID, cfg.TokenSecret),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        cfg.Logger.Named("bookstack"),
		maxRetries: cfg.MaxRetries,
	}
}

// BaseURL returns the instance's base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// entityResponse is the id-bearing part of every create response.
type entityResponse struct {
	ID int `json:"id"`
}

// listResponse is the envelope of every list endpoint.
type listResponse struct {
	Data []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
	Total int `json:"total"`
}

// VerifyConnectivity checks the books endpoint answers with the
// configured credentials.
func (c *Client) VerifyConnectivity(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/books", nil, nil); err != nil {
		return &domain.ConnectivityError{URL: c.baseURL, Cause: err}
	}
	return nil
}

func (c *Client) CreateBook(ctx context.Context, name, description string) (int, error) {
	var out entityResponse
	err := c.doJSON(ctx, http.MethodPost, "/books", map[string]any{
		"name":        name,
		"description": description,
	}, &out)
	return out.ID, err
}

func (c *Client) CreateChapter(ctx context.Context, bookID int, name, description string) (int, error) {
	var out entityResponse
	err := c.doJSON(ctx, http.MethodPost, "/chapters", map[string]any{
		"book_id":     bookID,
		"name":        name,
		"description": description,
	}, &out)
	return out.ID, err
}

func (c *Client) CreatePage(ctx context.Context, bookID int, title, body string, chapterID int) (int, error) {
	payload := map[string]any{
		"book_id":  bookID,
		"name":     title,
		"markdown": body,
	}
	if chapterID != 0 {
		payload["chapter_id"] = chapterID
	}
	var out entityResponse
	err := c.doJSON(ctx, http.MethodPost, "/pages", payload, &out)
	return out.ID, err
}

func (c *Client) UpdatePage(ctx context.Context, pageID int, body string) error {
	return c.doJSON(ctx, http.MethodPut, "/pages/"+strconv.Itoa(pageID), map[string]any{
		"markdown": body,
	}, nil)
}

func (c *Client) CreateShelf(ctx context.Context, name, description string) (int, error) {
	var out entityResponse
	err := c.doJSON(ctx, http.MethodPost, "/shelves", map[string]any{
		"name":        name,
		"description": description,
	}, &out)
	return out.ID, err
}

func (c *Client) AttachBooks(ctx context.Context, shelfID int, bookIDs []int) error {
	return c.doJSON(ctx, http.MethodPut, "/shelves/"+strconv.Itoa(shelfID), map[string]any{
		"books": bookIDs,
	}, nil)
}

// ListBooks returns the books visible to the configured token.
func (c *Client) ListBooks(ctx context.Context) ([]ports.RemoteBook, error) {
	var out listResponse
	if err := c.doJSON(ctx, http.MethodGet, "/books", nil, &out); err != nil {
		return nil, err
	}
	books := make([]ports.RemoteBook, 0, len(out.Data))
	for _, b := range out.Data {
		books = append(books, ports.RemoteBook{ID: b.ID, Name: b.Name})
	}
	return books, nil
}

// DeleteBook removes a book; used by the connectivity check to clean up
// its permission probe.
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/books/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) CountPages(ctx context.Context) (int, error) {
	return c.count(ctx, "/pages")
}

func (c *Client) CountChapters(ctx context.Context) (int, error) {
	return c.count(ctx, "/chapters")
}

func (c *Client) count(ctx context.Context, path string) (int, error) {
	var out listResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}
	if out.Total > 0 {
		return out.Total, nil
	}
	return len(out.Data), nil
}

// doJSON runs one JSON API call with the retry policy.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}

	op := func() error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", c.auth)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		c.log.Debug("request", "method", method, "path", path)
		return c.handle(req, out)
	}
	return c.retry(ctx, op)
}

// handle executes a prepared request and maps the response onto the
// retry policy: network errors and 5xx retryable, everything else final.
func (c *Client) handle(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed", "path", req.URL.Path, "error", err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 500 {
		c.log.Warn("server error", "path", req.URL.Path, "status", resp.StatusCode)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(data))
	}
	if resp.StatusCode >= 300 {
		return backoff.Permanent(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(data)))
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding response: %w", err))
		}
	}
	return nil
}

func (c *Client) retry(ctx context.Context, op backoff.Operation) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	return backoff.Retry(op, policy)
}

func truncate(data []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
