// Package lines splits text into lines and detects its line-ending convention.
package lines

import "strings"

// Ending is the byte sequence separating lines in a document.
type Ending string

// Recognized line endings.
const (
	LF   Ending = "\n"
	CRLF Ending = "\r\n"
)

// String returns a printable name for the ending.
func (e Ending) String() string {
	if e == CRLF {
		return "crlf"
	}
	return "lf"
}

// DetectEnding reports the line ending used by s.
// Any CRLF pair wins; otherwise the result is LF, which is also the
// default for text without line breaks.
func DetectEnding(s string) Ending {
	if strings.Contains(s, string(CRLF)) {
		return CRLF
	}
	return LF
}

// Split breaks s into lines with their endings stripped.
// CRLF counts as a single separator; bare LF and bare CR also separate lines.
// Empty lines are kept, so the result always has at least one element.
func Split(s string) []string {
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	lineStart := 0

	for idx := 0; idx < len(s); idx++ {
		switch s[idx] {
		case '\n':
			lines = append(lines, s[lineStart:idx])
			lineStart = idx + 1
		case '\r':
			lines = append(lines, s[lineStart:idx])
			// Consume the LF of a CRLF pair.
			if idx+1 < len(s) && s[idx+1] == '\n' {
				idx++
			}
			lineStart = idx + 1
		}
	}

	// Last line has no trailing separator (and may be empty).
	return append(lines, s[lineStart:])
}

// Join concatenates lines using ending as the separator.
func Join(lines []string, ending Ending) string {
	return strings.Join(lines, string(ending))
}

// IsBlank reports whether line holds nothing but spaces and tabs.
func IsBlank(line string) bool {
	return strings.TrimLeft(line, " \t") == ""
}
