package sanitizer

import (
	"strings"
	"unicode"
)

// TrimToUpper trims surrounding whitespace and upper-cases the rest.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RemoveWhitespace drops every Unicode whitespace character.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FieldText replaces tabs and line breaks with a space and removes other
// control characters. Regular spaces are kept as given.
func FieldText(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}

// KeepDigits drops every rune that is not a decimal digit.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
