package normalizer

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRegex = regexp.MustCompile(`(?is)<script[\s\S]*?</script>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style[\s\S]*?</style>`)
	tagRegex         = regexp.MustCompile(`<[^>]+>`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// NormalizeHTML strips markup from raw HTML into comparable plain text:
// script and style blocks are removed first, then all remaining tags, and
// any run of whitespace collapses to a single space. The function is total;
// malformed HTML is handled by the same scan, with unmatched angle brackets
// left as literal text.
func NormalizeHTML(html string) string {
	text := scriptBlockRegex.ReplaceAllString(html, " ")
	text = styleBlockRegex.ReplaceAllString(text, " ")
	text = tagRegex.ReplaceAllString(text, " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

const (
	defaultExcerptPrefix = 300
	defaultExcerptWindow = 160
)

// ExcerptAround returns a short window of text around the first
// case-insensitive occurrence of needle, for diagnostics. When the needle
// is absent (or empty) it falls back to the first 300 characters.
func ExcerptAround(text, needle string, window int) string {
	if window <= 0 {
		window = defaultExcerptWindow
	}

	idx := -1
	if needle != "" {
		idx = strings.Index(strings.ToLower(text), strings.ToLower(needle))
	}
	if idx == -1 {
		if len(text) > defaultExcerptPrefix {
			return text[:defaultExcerptPrefix]
		}
		return text
	}

	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + len(needle) + window
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
