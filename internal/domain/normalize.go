package domain

import (
	"strings"
)

// NormalizeDraft prepares a draft for prompting:
//   - converts CRLF and CR line endings to LF
//   - strips trailing spaces and tabs from every line
//   - trims leading/trailing blank lines
//
// Inner blank lines and full-width characters are preserved.
func NormalizeDraft(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	text = strings.Join(lines, "\n")

	return strings.Trim(text, "\n")
}

// IsBlank reports whether text has no visible characters. The ideographic
// space (U+3000) counts as whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
