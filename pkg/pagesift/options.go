// Package pagesift provides the public API for web content extraction:
// fetch a page, classify its layout, strip boilerplate, and convert the
// result to HTML, Markdown, or plain text.
package pagesift

import (
	"time"

	"github.com/pagesift/pagesift/internal/fetcher"
	"github.com/pagesift/pagesift/pkg/extract"
)

// Config holds all pipeline configuration.
type Config struct {
	// Fetch settings
	UserAgent string
	Timeout   time.Duration

	// Extraction settings
	Extract extract.Options

	// Fetcher overrides the default HTTP fetcher (for tests or custom
	// transports).
	Fetcher fetcher.Fetcher
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	fetchDefaults := fetcher.DefaultConfig()
	return Config{
		UserAgent: fetchDefaults.UserAgent,
		Timeout:   fetchDefaults.Timeout,
		Extract:   extract.DefaultOptions(),
	}
}

// Option configures the pipeline.
type Option func(*Config)

// WithUserAgent sets the outbound User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithTimeout bounds each outbound fetch.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithExtractOptions sets extraction options.
func WithExtractOptions(opts extract.Options) Option {
	return func(c *Config) {
		c.Extract = opts
	}
}

// WithFetcher injects a custom fetcher.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}
