package confparse

import (
	"strings"
	"unicode"
)

const separator = "="

// commentPrefixes are checked in order against the trimmed line.
var commentPrefixes = []string{";", "#", "//"}

// Parse converts raw configuration text into a key/value map. It never
// fails: lines that are not valid key=value syntax are ignored.
func Parse(content string) map[string]string {
	out := make(map[string]string)

	for _, raw := range strings.Split(content, "\n") {
		key, value, ok := parseLine(raw)
		if !ok {
			continue
		}
		out[key] = value
	}

	return out
}

// parseLine returns the key and value of a single line, or ok=false when the
// line is blank, a comment, or has no separator.
func parseLine(raw string) (key, value string, ok bool) {
	line := strings.TrimFunc(raw, isSpace)
	if line == "" || isComment(line) {
		return "", "", false
	}

	parts := strings.Split(line, separator)
	if len(parts) < 2 {
		return "", "", false
	}

	// With exactly two parts both trims hit the same piece, leaving the
	// value trimmed on both sides. With more parts, whitespace around the
	// inner separators stays as written.
	parts[0] = strings.TrimFunc(parts[0], isSpace)
	parts[1] = strings.TrimLeftFunc(parts[1], isSpace)
	last := len(parts) - 1
	parts[last] = strings.TrimRightFunc(parts[last], isSpace)

	return parts[0], strings.Join(parts[1:], separator), true
}

func isComment(line string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// isSpace reports whether r is whitespace for trimming purposes. The byte
// order mark counts as whitespace so that a BOM-prefixed first line parses
// like any other. NEL (U+0085) does not, although unicode.IsSpace accepts it.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
