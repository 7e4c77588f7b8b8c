package validation

import (
	"strings"
	"unicode"
)

// StripUnprintable removes non-printable characters from user-supplied text,
// allowing common whitespace like space, tab, newline, and carriage return.
// Applied to category and description fields before they are stored.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}
