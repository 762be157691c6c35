// backend/src/validation/sanitizers.go
package validation

import (
	"strings"
	"unicode"
)

// StripUnprintable removes non-printable characters, allowing common whitespace
// like space, tab, newline, and carriage return. Feed cells are third-party
// text that ends up rendered in a browser, so they get cleaned on the way in.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1 // Drop the rune
	}, s)
}

// SanitizeCellValue normalizes one feed cell for display: strip control
// characters, then trim surrounding whitespace.
func SanitizeCellValue(s string) string {
	return strings.TrimSpace(StripUnprintable(s))
}
