// Package gematria computes numeric values of Hebrew and English text
// under the classic letter-to-number assignment schemes.
package gematria

import (
	"fmt"
	"strings"
)

// Scheme identifies a letter table and aggregation rule.
type Scheme int

const (
	// HebrewStandard is Mispar Hechrachi: Aleph=1 .. Tav=400, finals
	// valued like their base letters.
	HebrewStandard Scheme = iota
	// EnglishOrdinal is A=1 .. Z=26.
	EnglishOrdinal
	// EnglishFullReduction reduces each ordinal value to a single digit.
	EnglishFullReduction
	// EnglishReverseOrdinal is Z=1 .. A=26.
	EnglishReverseOrdinal
	// EnglishReverseReduction reduces each reverse-ordinal value to a single digit.
	EnglishReverseReduction
)

// DefaultScheme is used when a scheme identifier cannot be resolved,
// e.g. from a malformed shared URL.
const DefaultScheme = HebrewStandard

// Schemes returns all schemes in display order.
func Schemes() []Scheme {
	return []Scheme{
		HebrewStandard,
		EnglishOrdinal,
		EnglishFullReduction,
		EnglishReverseOrdinal,
		EnglishReverseReduction,
	}
}

// String returns the stable identifier used in config files and share URLs.
func (s Scheme) String() string {
	switch s {
	case HebrewStandard:
		return "hebrew-standard"
	case EnglishOrdinal:
		return "english-ordinal"
	case EnglishFullReduction:
		return "full-reduction"
	case EnglishReverseOrdinal:
		return "reverse-ordinal"
	case EnglishReverseReduction:
		return "reverse-reduction"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Label returns the human-readable name shown in the UI.
func (s Scheme) Label() string {
	switch s {
	case HebrewStandard:
		return "Hebrew Standard"
	case EnglishOrdinal:
		return "English Ordinal"
	case EnglishFullReduction:
		return "Full Reduction"
	case EnglishReverseOrdinal:
		return "Reverse Ordinal"
	case EnglishReverseReduction:
		return "Reverse Reduction"
	default:
		return s.String()
	}
}

// Hebrew reports whether the scheme reads the Hebrew alphabet.
func (s Scheme) Hebrew() bool {
	return s == HebrewStandard
}

// table returns the letter table for the scheme.
func (s Scheme) table() map[rune]int {
	switch s {
	case HebrewStandard:
		return hebrewStandard
	case EnglishOrdinal:
		return englishOrdinal
	case EnglishFullReduction:
		return englishFullReduction
	case EnglishReverseOrdinal:
		return englishReverseOrdinal
	case EnglishReverseReduction:
		return englishReverseReduction
	default:
		return englishOrdinal
	}
}

// ParseScheme resolves a scheme identifier case-insensitively.
// A few short aliases are accepted for CLI convenience.
func ParseScheme(id string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "hebrew-standard", "hebrew", "standard":
		return HebrewStandard, nil
	case "english-ordinal", "ordinal":
		return EnglishOrdinal, nil
	case "full-reduction", "reduction":
		return EnglishFullReduction, nil
	case "reverse-ordinal":
		return EnglishReverseOrdinal, nil
	case "reverse-reduction":
		return EnglishReverseReduction, nil
	default:
		return DefaultScheme, fmt.Errorf("unknown scheme %q", id)
	}
}
