// Package extract strips page boilerplate, delegating the heavy lifting
// to go-trafilatura.
package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"

	"github.com/pagesift/pagesift/internal/pagetype"
)

// Options configures extraction.
type Options struct {
	// IncludeImages keeps <img> elements in the extracted content.
	IncludeImages bool
	// IncludeLinks keeps <a> elements in the extracted content.
	IncludeLinks bool
	// Fallback enables the readability/dom-distiller fallback chain
	// when the primary extraction finds nothing.
	Fallback bool
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeImages: true,
		IncludeLinks:  true,
		Fallback:      true,
	}
}

// Result holds the extracted main content.
type Result struct {
	// HTML is the extracted content markup.
	HTML string
	// Text is the extractor's plain-text rendition of the content.
	Text string
	// Title is the page title, when the extractor finds one.
	Title string
}

// Extractor removes boilerplate from fetched pages.
type Extractor struct {
	opts Options
}

// New creates an Extractor. Pass nil for default options.
func New(opts *Options) *Extractor {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}
	return &Extractor{opts: *opts}
}

// Extract pulls the main content out of a page. The page type tunes
// extraction: forum pages keep comment blocks, other pages drop them.
// When the extractor finds no content node it degrades gracefully to the
// input markup rather than returning nothing.
func (e *Extractor) Extract(pageHTML string, pageURL string, kind pagetype.Type) (Result, error) {
	opts := trafilatura.Options{
		ExcludeComments: kind != pagetype.Forum,
		IncludeImages:   e.opts.IncludeImages,
		IncludeLinks:    e.opts.IncludeLinks,
		EnableFallback:  e.opts.Fallback,
	}
	if parsed, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = parsed
	}

	extracted, err := trafilatura.Extract(strings.NewReader(pageHTML), opts)
	if err != nil {
		return Result{}, fmt.Errorf("extract content: %w", err)
	}
	if extracted == nil {
		return Result{HTML: pageHTML}, nil
	}

	result := Result{
		Text:  extracted.ContentText,
		Title: extracted.Metadata.Title,
	}

	if extracted.ContentNode == nil {
		result.HTML = pageHTML
		return result, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, extracted.ContentNode); err != nil {
		return Result{}, fmt.Errorf("render content: %w", err)
	}
	result.HTML = gohtml.Format(buf.String())

	return result, nil
}
