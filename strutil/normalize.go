package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize strips accents from text and lowercases it. The input is
// decomposed to NFD, combining marks are dropped, and the remainder is
// lowercased: "l'école" becomes "l'ecole".
func Normalize(text string) string {
	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
