package pagesift

import (
	"context"
	"fmt"
	"time"

	"github.com/pagesift/pagesift/internal/fetcher"
	"github.com/pagesift/pagesift/internal/logger"
	"github.com/pagesift/pagesift/internal/pagetype"
	"github.com/pagesift/pagesift/pkg/convert"
	"github.com/pagesift/pagesift/pkg/extract"
)

// Result is the outcome of one extraction.
type Result struct {
	URL       string
	Content   string
	Format    convert.Format
	Type      pagetype.Type
	Title     string
	Encoding  string
	FetchedAt time.Time

	FetchDuration   time.Duration
	ExtractDuration time.Duration
}

// Pagesift is the extraction pipeline: fetch, classify, extract, convert.
type Pagesift struct {
	fetcher   fetcher.Fetcher
	extractor *extract.Extractor
	converter *convert.Converter
	config    Config
}

// New creates a pipeline.
func New(opts ...Option) *Pagesift {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := cfg.Fetcher
	if f == nil {
		f = fetcher.New(fetcher.Config{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		})
	}

	extractOpts := cfg.Extract
	return &Pagesift{
		fetcher:   f,
		extractor: extract.New(&extractOpts),
		converter: convert.New(),
		config:    cfg,
	}
}

// Extract runs the pipeline for one URL. An empty format means
// convert.DefaultFormat; unknown formats pass the extracted markup
// through unchanged.
func (p *Pagesift) Extract(ctx context.Context, rawURL string, format convert.Format) (Result, error) {
	if format == "" {
		format = convert.DefaultFormat
	}

	fetchStart := time.Now()
	page, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return Result{URL: rawURL}, err
	}
	fetchDuration := time.Since(fetchStart)

	kind := pagetype.Detect(page.HTML, rawURL)
	logger.Debug("page fetched",
		"url", rawURL,
		"type", kind,
		"encoding", page.Encoding,
		"bytes", len(page.HTML),
	)

	extractStart := time.Now()
	extracted, err := p.extractor.Extract(page.HTML, rawURL, kind)
	if err != nil {
		return Result{URL: rawURL, Type: kind}, err
	}

	content, err := p.converter.Convert(extracted.HTML, format, rawURL)
	if err != nil {
		return Result{URL: rawURL, Type: kind}, fmt.Errorf("convert content: %w", err)
	}

	return Result{
		URL:             rawURL,
		Content:         content,
		Format:          format,
		Type:            kind,
		Title:           extracted.Title,
		Encoding:        page.Encoding,
		FetchedAt:       page.FetchedAt,
		FetchDuration:   fetchDuration,
		ExtractDuration: time.Since(extractStart),
	}, nil
}
