// Package convert maps extracted markup to an output representation.
package convert

import (
	"fmt"
	"net/url"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// Format is an output representation.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// DefaultFormat is used when a request does not name a format.
const DefaultFormat = FormatText

// Converter renders extracted markup into the requested format.
// It is safe for concurrent use.
type Converter struct {
	md *converter.Converter
}

// New creates a Converter.
func New() *Converter {
	return &Converter{
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert transforms markup into the given format. The base URL, when
// parseable, resolves relative links in markdown output. Unknown formats
// return the markup unchanged.
func (c *Converter) Convert(markup string, format Format, baseURL string) (string, error) {
	switch format {
	case FormatHTML:
		return markup, nil
	case FormatMarkdown:
		return c.toMarkdown(markup, baseURL)
	case FormatText:
		return htmlToText(markup), nil
	default:
		return markup, nil
	}
}

func (c *Converter) toMarkdown(markup string, baseURL string) (string, error) {
	var opts []converter.ConvertOptionFunc
	if domain := domainOf(baseURL); domain != "" {
		opts = append(opts, converter.WithDomain(domain))
	}

	markdown, err := c.md.ConvertString(markup, opts...)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return cleanMarkdown(markdown), nil
}

// domainOf returns scheme://host for a URL, or "" when it has no host.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host)
}
