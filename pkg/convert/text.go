package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// skippedElements hold no rendered text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

// htmlToText parses markup and joins its text nodes with newlines, each
// trimmed. Unparseable input degrades to a tag-stripped string.
func htmlToText(markup string) string {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(stripTags(markup))
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return strings.Join(parts, "\n")
}

func stripTags(markup string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range markup {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
