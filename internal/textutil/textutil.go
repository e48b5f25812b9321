package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ellipsis is appended by MaxLength when a string is cut
const Ellipsis = " ...."

// LTrim removes prefix from s once, if s starts with it
func LTrim(s, prefix string) string {
	return strings.TrimPrefix(s, prefix)
}

// RTrim removes suffix from s once, if s ends with it
func RTrim(s, suffix string) string {
	return strings.TrimSuffix(s, suffix)
}

// IEquals reports whether a and b are equal after lowercasing both.
// The case mapping is language neutral, so "I" never becomes a dotless "ı".
func IEquals(a, b string) bool {
	// Casers are stateful and must not be shared between goroutines.
	lower := cases.Lower(language.Und)
	return lower.String(a) == lower.String(b)
}

// MaxLength cuts s down to max runes and appends Ellipsis when s is longer than max
func MaxLength(s string, max int) string {
	if max < 0 {
		max = 0
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	var b strings.Builder
	b.WriteString(string(runes[:max]))
	b.WriteString(Ellipsis)
	return b.String()
}
