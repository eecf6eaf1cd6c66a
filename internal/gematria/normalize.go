package gematria

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripNiqqud decomposes the text and removes combining marks, so Niqqud
// vowel points disappear while the consonants around them keep their
// positions. NFC recomposition restores any non-Hebrew precomposed runes.
var stripNiqqud = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripMarks returns the text without combining diacritical marks.
// On a transform error the original text is returned; the table lookup
// skips anything it does not recognize anyway.
func stripMarks(s string) string {
	out, _, err := transform.String(stripNiqqud, s)
	if err != nil {
		return s
	}
	return out
}
