// Package api provides the HTTP client for the latest-news endpoint.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/potluck-xl/ptlk/internal/domain/news"
)

// UserAgent is sent with every request.
const UserAgent = "ptlk/0.1.0"

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// Client fetches article pages from the API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    TrimBaseURL(baseURL),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// TrimBaseURL removes surrounding whitespace and trailing slashes.
func TrimBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

// Fetch requests one page of the latest articles.
func (c *Client) Fetch(ctx context.Context, page, limit int) (news.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + "/api/latest?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return news.Page{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return news.Page{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return news.Page{}, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var out news.Page
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return news.Page{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}
