package youtube

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// flattenCommentHTML converts a comment's textDisplay payload, which
// the API returns as an HTML fragment (<br>, <a>, entities), into
// plain text. On parse failure the raw payload is kept.
func flattenCommentHTML(display string) string {
	if !strings.ContainsAny(display, "<&") {
		return display
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(display))
	if err != nil {
		return display
	}
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	return strings.TrimSpace(doc.Text())
}
