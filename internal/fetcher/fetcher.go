// Package fetcher handles page fetching and text decoding.
package fetcher

import (
	"context"
	"errors"
	"time"
)

// ErrFetch marks failures reaching or reading the remote page: network
// errors, unsupported schemes, and non-2xx responses. Handlers map it to
// a client error; everything else is a server error.
var ErrFetch = errors.New("fetch failed")

// Page represents a fetched, decoded page.
type Page struct {
	URL         string
	HTML        string // decoded page text
	StatusCode  int
	ContentType string
	Encoding    string // encoding the body was decoded with
	FetchedAt   time.Time
}

// Config holds common fetcher configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: "pagesift/1.0 (https://github.com/pagesift/pagesift)",
		Timeout:   30 * time.Second,
	}
}

// Fetcher abstracts page fetching.
type Fetcher interface {
	// Fetch retrieves and decodes page content from a URL.
	Fetch(ctx context.Context, url string) (Page, error)
}
