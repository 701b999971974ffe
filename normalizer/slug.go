// backend/normalizer/slug.go
package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks,
// so "Café Médina" slugs the same as "Cafe Medina".
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Slugify converts a free-text name into the stable identifier used as the
// cross-snapshot entity key: lowercased, diacritics stripped, everything
// outside [a-z0-9 -] removed, whitespace collapsed to single hyphens.
// It never fails; empty input yields empty output.
func Slugify(text string) string {
	out := strings.ToLower(text)

	if stripped, _, err := transform.String(stripMarks, out); err == nil {
		out = stripped
	}

	out = nonSlugChars.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	out = whitespaceRun.ReplaceAllString(out, "-")
	out = hyphenRun.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
