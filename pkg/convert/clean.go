package convert

import (
	"regexp"
	"strings"
)

var (
	separatorRuns = regexp.MustCompile(`={3,}`)
	unlabeledImg  = regexp.MustCompile(`!\[\]\((.*?)\)`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

// cleanMarkdown normalizes converter output: per-line trimming, decorative
// separator removal, placeholder labels for unlabeled images, and at most
// one blank line between blocks. Blank-line collapsing runs last since the
// earlier passes can empty out lines.
func cleanMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = separatorRuns.ReplaceAllString(text, "")
	text = unlabeledImg.ReplaceAllString(text, "![图片]($1)")
	text = blankRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
