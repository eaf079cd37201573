package readwise

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"readerscout/internal/adapters/util"
	"readerscout/internal/core/domain/models"
	"readerscout/internal/core/domain/ports"
	"time"

	"github.com/rs/zerolog"
)

// Query parameter names understood by the list endpoint.
const (
	paramPageCursor   = "pageCursor"
	paramCategory     = "category"
	paramLocation     = "location"
	paramUpdatedAfter = "updatedAfter"
	paramWithContent  = "withHtmlContent"
)

var _ ports.DocumentSource = (*Client)(nil)

// Client talks to the Readwise Reader API with a single access token.
type Client struct {
	authURL string
	listURL string
	apiKey  string
	client  *http.Client
}

// NewClient expects validated endpoint URLs; config.Load owns their defaults.
func NewClient(authURL, listURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		authURL: authURL,
		listURL: listURL,
		apiKey:  apiKey,
		client: &http.Client{
			Transport: &util.LoggingTransport{Log: log},
			Timeout:   timeout,
		},
	}
}

// VerifyToken checks the key against the auth endpoint. Only 204 counts as
// valid; the body is never inspected.
func (c *Client) VerifyToken(ctx context.Context) (bool, error) {
	req, err := c.newRequest(ctx, c.authURL)
	if err != nil {
		return false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("auth check %s: %w: %w", c.authURL, models.ErrNetwork, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusNoContent, nil
}

// ListPage requests one page of documents. Filters left at their zero value
// are omitted from the query entirely.
func (c *Client) ListPage(ctx context.Context, filter models.ListFilter, cursor string) (*models.Page, error) {
	u, err := url.Parse(c.listURL)
	if err != nil {
		return nil, fmt.Errorf("invalid list URL %q: %w", c.listURL, err)
	}
	u.RawQuery = listQuery(u.Query(), filter, cursor).Encode()

	req, err := c.newRequest(ctx, u.String())
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w: %w", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &models.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var page models.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return &page, nil
}

func listQuery(q url.Values, filter models.ListFilter, cursor string) url.Values {
	if cursor != "" {
		q.Set(paramPageCursor, cursor)
	}
	if filter.Category != "" {
		q.Set(paramCategory, string(filter.Category))
	}
	if filter.Location != "" {
		q.Set(paramLocation, string(filter.Location))
	}
	if !filter.UpdatedAfter.IsZero() {
		q.Set(paramUpdatedAfter, filter.UpdatedAfter.UTC().Format(time.RFC3339))
	}
	if filter.WithContent {
		q.Set(paramWithContent, "true")
	}
	return q
}

func (c *Client) newRequest(ctx context.Context, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
