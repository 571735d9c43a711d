// Package textutil canonicalizes user-facing names for keyword and lookup matching.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var hebrewPunctuation = strings.NewReplacer("״", "\"", "׳", "'")

// Fold applies NFKC normalization and Unicode case folding, drops control
// characters, collapses runs of whitespace and trims the result. Hebrew
// gershayim and geresh become ASCII quotes so abbreviations typed either way
// compare equal.
func Fold(s string) string {
	// cases.Caser keeps state between calls, so each call gets its own.
	folded := cases.Fold().String(norm.NFKC.String(s))
	folded = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, folded)
	folded = hebrewPunctuation.Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}
