// Package httpsource fetches dashboard documents over HTTP.
package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
)

// Config controls how documents are requested.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Client requests documents relative to a base URL.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  cfg.UserAgent,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// BaseURL returns the normalized base the client resolves names against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch GETs base/name. Non-2xx responses become *sources.StatusError.
func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL(c.baseURL, name), nil)
	if err != nil {
		return nil, fmt.Errorf("httpsource: build request for %s: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpsource: fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &sources.StatusError{
			Source:     Name,
			Document:   name,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("httpsource: read %s: %w", name, err)
	}
	return body, nil
}
