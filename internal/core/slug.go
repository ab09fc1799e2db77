// AngelaMos | 2026
// slug.go

package core

import (
	"strings"
	"unicode"
)

// Slugify lowercases the title, drops everything that is not a word
// character, space, or hyphen, and collapses whitespace runs into single
// hyphens.
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
