package normalizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHTML_StripsScriptAndStyleBlocks(t *testing.T) {
	html := `<html><head>
		<SCRIPT type="text/javascript">
			var tracking = "should disappear";
		</SCRIPT>
		<style>
			body { color: red; }
		</style>
	</head><body><p>Hello   world</p></body></html>`

	assert.Equal(t, "Hello world", NormalizeHTML(html))
}

func TestNormalizeHTML_CollapsesWhitespaceAndTrims(t *testing.T) {
	html := "  <div>a\n\n\tb   c</div>  "
	assert.Equal(t, "a b c", NormalizeHTML(html))
}

func TestNormalizeHTML_Deterministic(t *testing.T) {
	html := `<div><p>Tickets</p><script>x()</script> on sale </div>`
	first := NormalizeHTML(html)
	second := NormalizeHTML(html)
	assert.Equal(t, first, second)
}

func TestNormalizeHTML_MalformedInputIsTotal(t *testing.T) {
	inputs := []string{
		"<div><p>unterminated",
		"a < b and c > d",
		"<script>never closed",
		"<<<>>>",
		"",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { NormalizeHTML(input) }, "input: %q", input)
	}

	// An unmatched '<' with no closing '>' is literal text.
	assert.Contains(t, NormalizeHTML("price < 100"), "price < 100")
}

func TestExcerptAround_NeedlePresent(t *testing.T) {
	text := strings.Repeat("x", 500) + " MARKER " + strings.Repeat("y", 500)
	excerpt := ExcerptAround(text, "marker", 20)
	assert.Contains(t, excerpt, "MARKER")
	assert.LessOrEqual(t, len(excerpt), len(" MARKER ")+40)
}

func TestExcerptAround_NeedleAbsentFallsBackToPrefix(t *testing.T) {
	text := strings.Repeat("a", 1000)
	excerpt := ExcerptAround(text, "missing", 160)
	assert.Equal(t, text[:300], excerpt)
}

func TestExcerptAround_ShortText(t *testing.T) {
	assert.Equal(t, "short", ExcerptAround("short", "missing", 160))
}
