package coding

import (
	"strings"
)

// NormalizeNewlines rewrites every line break as a lone carriage return.
// "\r\n" and "\n\r" are collapsed before the remaining "\n" are replaced.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\r")
	text = strings.ReplaceAll(text, "\n\r", "\r")
	text = strings.ReplaceAll(text, "\n", "\r")
	return text
}
