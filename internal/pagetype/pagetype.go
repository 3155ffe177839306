// Package pagetype guesses a page's layout category from its URL and
// its tag class/id vocabulary.
package pagetype

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Type is a page layout category.
type Type string

const (
	// Article is the default category: a regular content page.
	Article Type = "article"
	// Forum covers threaded discussion layouts.
	Forum Type = "forum"
	// Weixin is a WeChat Official Account article page.
	Weixin Type = "weixin"
)

// weixinDomains identify WeChat article pages by URL alone.
var weixinDomains = []string{
	"mp.weixin.qq.com",
	"weixin.qq.com",
}

// forumIndicators are matched against the page's combined class/id
// vocabulary, in English and Chinese.
var forumIndicators = []string{
	"forum", "topic", "thread", "post", "reply", "comment", "discuss",
	"论坛", "帖子", "回复", "评论", "讨论",
}

// Detect classifies a page. Rule order, first match wins:
//
//  1. a WeChat article domain in the URL,
//  2. a forum indicator in any element's class list or id,
//  3. article otherwise.
func Detect(html string, pageURL string) Type {
	urlLower := strings.ToLower(pageURL)
	for _, domain := range weixinDomains {
		if strings.Contains(urlLower, domain) {
			return Weixin
		}
	}

	if hasForumVocabulary(html) {
		return Forum
	}

	return Article
}

func hasForumVocabulary(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	var sb strings.Builder
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		if class, ok := s.Attr("class"); ok {
			sb.WriteString(class)
			sb.WriteString(" ")
		}
	})
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			sb.WriteString(id)
			sb.WriteString(" ")
		}
	})

	vocabulary := strings.ToLower(sb.String())
	for _, indicator := range forumIndicators {
		if strings.Contains(vocabulary, indicator) {
			return true
		}
	}
	return false
}

// String returns the label used in API responses.
func (t Type) String() string {
	return string(t)
}
