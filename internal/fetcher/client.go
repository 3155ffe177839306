package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches pages over HTTP. Each Fetch uses its own http.Client so
// no connection state outlives the request.
type Client struct {
	config Config
}

// New creates a new Client.
func New(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{config: cfg}
}

// Fetch issues a single GET and decodes the response body.
func (c *Client) Fetch(ctx context.Context, targetURL string) (Page, error) {
	page := Page{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return page, fmt.Errorf("%w: invalid URL %q: %v", ErrFetch, targetURL, err)
	}
	if !isHTTPScheme(req.URL) {
		return page, fmt.Errorf("%w: unsupported URL scheme %q", ErrFetch, req.URL.Scheme)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	httpClient := &http.Client{Timeout: c.config.Timeout}
	defer httpClient.CloseIdleConnections()

	resp, err := httpClient.Do(req)
	if err != nil {
		return page, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	page.StatusCode = resp.StatusCode
	page.ContentType = resp.Header.Get("Content-Type")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return page, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return page, fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}

	text, encName, err := DecodeText(raw, page.ContentType)
	if err != nil {
		return page, fmt.Errorf("decode body: %w", err)
	}
	page.HTML = text
	page.Encoding = encName

	return page, nil
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
