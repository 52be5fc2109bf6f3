package normalizer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks scans HTML for href attribute values in encounter order.
// Empty values, fragment-only links and javascript: pseudo-links are
// discarded. Deduplication and sorting are left to the caller, which
// performs both before fingerprinting. The parse is tolerant: malformed
// HTML yields whatever links the repaired document tree contains, never an
// error.
func ExtractLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}
		links = append(links, href)
	})
	return links
}
