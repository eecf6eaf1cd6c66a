// Package share encodes calculations as URL query strings so a link can
// reproduce the exact same result.
package share

import (
	"net/url"
	"strings"

	"github.com/mshalev/gematria/internal/gematria"
)

// Encode builds a percent-encoded query string carrying the text and
// scheme identifier. The encoding round-trips arbitrary Unicode text.
func Encode(text string, scheme gematria.Scheme) string {
	v := url.Values{}
	v.Set("text", text)
	v.Set("scheme", scheme.String())
	return v.Encode()
}

// Decode parses a query string produced by Encode. A missing or unknown
// scheme identifier falls back to the default scheme rather than failing;
// a malformed query decodes to empty text.
func Decode(query string) (string, gematria.Scheme) {
	query = strings.TrimPrefix(query, "?")
	v, err := url.ParseQuery(query)
	if err != nil {
		return "", gematria.DefaultScheme
	}
	scheme, err := gematria.ParseScheme(v.Get("scheme"))
	if err != nil {
		scheme = gematria.DefaultScheme
	}
	return v.Get("text"), scheme
}

// URL joins a base URL with the encoded query for display.
func URL(base, text string, scheme gematria.Scheme) string {
	if base == "" {
		return "?" + Encode(text, scheme)
	}
	return strings.TrimSuffix(base, "?") + "?" + Encode(text, scheme)
}
