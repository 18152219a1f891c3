package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var foldCaser = cases.Fold()

// Normalize canonicalizes a title for group-key comparison.
//
// Ruleset, in order: Unicode NFKC normalization, full case folding, then
// every run of non-letter/non-digit runes becomes a single space and the
// result is trimmed. Leading articles ("The", "A") are intentionally kept;
// stripping them merges distinct films into one ambiguity group.
func Normalize(title string) string {
	folded := foldCaser.String(norm.NFKC.String(title))

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}
