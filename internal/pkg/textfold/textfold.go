// Package textfold normalizes free text for accent-insensitive search.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips combining diacritical marks, so that
// "Aït Saïd" matches "ait said". Input that fails to transform is
// returned lowercased unchanged.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
