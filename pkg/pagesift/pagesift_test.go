package pagesift

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pagesift/pagesift/internal/fetcher"
	"github.com/pagesift/pagesift/internal/pagetype"
	"github.com/pagesift/pagesift/pkg/convert"
)

// serveTestdata serves a testdata file over a local HTTP server.
func serveTestdata(t *testing.T, filename string) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("failed to read testdata %s: %v", filename, err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtract_DefaultFormatIsText(t *testing.T) {
	srv := serveTestdata(t, "article.html")

	p := New()
	result, err := p.Extract(context.Background(), srv.URL, "")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if result.Format != convert.FormatText {
		t.Errorf("Format = %q, want %q", result.Format, convert.FormatText)
	}
	if regexp.MustCompile(`<[a-zA-Z/][^>]*>`).MatchString(result.Content) {
		t.Errorf("text content should contain no markup tags, got:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, "ideal workload for") {
		t.Errorf("content should contain the article body, got:\n%s", result.Content)
	}
}

func TestExtract_HTMLFormat(t *testing.T) {
	srv := serveTestdata(t, "article.html")

	p := New()
	result, err := p.Extract(context.Background(), srv.URL, convert.FormatHTML)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if !strings.Contains(result.Content, "<p") {
		t.Errorf("html content should contain markup, got:\n%s", result.Content)
	}
	if result.Type != pagetype.Article {
		t.Errorf("Type = %q, want %q", result.Type, pagetype.Article)
	}
}

func TestExtract_MarkdownFormat(t *testing.T) {
	srv := serveTestdata(t, "article.html")

	p := New()
	result, err := p.Extract(context.Background(), srv.URL, convert.FormatMarkdown)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if strings.Contains(result.Content, "\n\n\n") {
		t.Errorf("markdown should have at most one consecutive blank line, got:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, "ideal workload for") {
		t.Errorf("content should contain the article body, got:\n%s", result.Content)
	}
}

func TestExtract_ForumPage(t *testing.T) {
	srv := serveTestdata(t, "forum.html")

	p := New()
	result, err := p.Extract(context.Background(), srv.URL, convert.FormatText)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if result.Type != pagetype.Forum {
		t.Errorf("Type = %q, want %q", result.Type, pagetype.Forum)
	}
}

func TestExtract_FetchErrorIsErrFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := New()
	_, err := p.Extract(context.Background(), url, convert.FormatText)
	if err == nil {
		t.Fatal("expected error for unreachable URL")
	}
	if !errors.Is(err, fetcher.ErrFetch) {
		t.Errorf("error should be ErrFetch, got %v", err)
	}
}

func TestExtract_UnknownFormatPassesMarkupThrough(t *testing.T) {
	srv := serveTestdata(t, "article.html")

	p := New()
	result, err := p.Extract(context.Background(), srv.URL, convert.Format("docx"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if !strings.Contains(result.Content, "<p") {
		t.Errorf("unknown format should return the extracted markup, got:\n%s", result.Content)
	}
	if result.Format != convert.Format("docx") {
		t.Errorf("Format = %q, want the requested value echoed", result.Format)
	}
}

func TestNew_OptionOverrides(t *testing.T) {
	stub := &stubFetcher{}
	p := New(
		WithUserAgent("custom/1.0"),
		WithFetcher(stub),
	)
	if p.config.UserAgent != "custom/1.0" {
		t.Errorf("UserAgent = %q, want custom/1.0", p.config.UserAgent)
	}
	if p.fetcher != stub {
		t.Error("injected fetcher should be used")
	}
}

type stubFetcher struct{}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (fetcher.Page, error) {
	return fetcher.Page{URL: url, HTML: "<html><body><p>stub</p></body></html>"}, nil
}
