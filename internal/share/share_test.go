package share

import (
	"testing"

	"github.com/mshalev/gematria/internal/gematria"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		text   string
		scheme gematria.Scheme
	}{
		{"hello world", gematria.EnglishOrdinal},
		{"בראשית ברא", gematria.HebrewStandard},
		{"שָׁלוֹם", gematria.HebrewStandard},
		{"a&b=c?d", gematria.EnglishReverseReduction},
		{"", gematria.EnglishFullReduction},
	}
	for _, tc := range cases {
		text, scheme := Decode(Encode(tc.text, tc.scheme))
		if text != tc.text {
			t.Errorf("text round trip: got %q, want %q", text, tc.text)
		}
		if scheme != tc.scheme {
			t.Errorf("scheme round trip for %q: got %v, want %v", tc.text, scheme, tc.scheme)
		}
	}
}

func TestRoundTripReproducesResult(t *testing.T) {
	query := Encode("שלום", gematria.HebrewStandard)
	text, scheme := Decode(query)
	original := gematria.Compute("שלום", gematria.HebrewStandard)
	reloaded := gematria.Compute(text, scheme)
	if reloaded.Total != original.Total {
		t.Fatalf("reloaded total = %d, want %d", reloaded.Total, original.Total)
	}
}

func TestDecodeUnknownSchemeFallsBack(t *testing.T) {
	text, scheme := Decode("text=abc&scheme=bogus")
	if text != "abc" {
		t.Fatalf("text = %q, want abc", text)
	}
	if scheme != gematria.DefaultScheme {
		t.Fatalf("scheme = %v, want default", scheme)
	}
}

func TestDecodeMalformedQuery(t *testing.T) {
	text, scheme := Decode("%zz=%%%")
	if text != "" || scheme != gematria.DefaultScheme {
		t.Fatalf("got (%q, %v), want empty text and default scheme", text, scheme)
	}
}

func TestDecodeLeadingQuestionMark(t *testing.T) {
	text, scheme := Decode("?" + Encode("abc", gematria.EnglishOrdinal))
	if text != "abc" || scheme != gematria.EnglishOrdinal {
		t.Fatalf("got (%q, %v)", text, scheme)
	}
}

func TestURL(t *testing.T) {
	got := URL("https://example.com/calc", "abc", gematria.EnglishOrdinal)
	want := "https://example.com/calc?scheme=english-ordinal&text=abc"
	if got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}
