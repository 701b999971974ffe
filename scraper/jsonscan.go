// backend/scraper/jsonscan.go
package scraper

import "strings"

// ExtractJSONArrayByKey locates a `"key":[...]` array literal embedded
// anywhere in the document text and returns the bracket-balanced array
// substring, or "" when the key is absent or the array never closes. The scan
// is string-aware: bracket characters inside quoted strings (including
// backslash-escaped quotes) do not affect the depth count, which a
// whole-document regex could not get right.
func ExtractJSONArrayByKey(html, key string) string {
	marker := `"` + key + `":[`
	start := strings.Index(html, marker)
	if start == -1 {
		return ""
	}

	arrayStart := start + len(marker) - 1
	depth := 0
	inString := false
	escaped := false

	for i := arrayStart; i < len(html); i++ {
		ch := html[i]

		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return html[arrayStart : i+1]
			}
		}
	}

	return ""
}
