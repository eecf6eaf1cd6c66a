package gematria

import "testing"

func TestParseScheme(t *testing.T) {
	cases := []struct {
		id   string
		want Scheme
	}{
		{"hebrew-standard", HebrewStandard},
		{"HEBREW-STANDARD", HebrewStandard},
		{"hebrew", HebrewStandard},
		{"english-ordinal", EnglishOrdinal},
		{"full-reduction", EnglishFullReduction},
		{"reverse-ordinal", EnglishReverseOrdinal},
		{"Reverse-Reduction", EnglishReverseReduction},
		{" ordinal ", EnglishOrdinal},
	}
	for _, tc := range cases {
		got, err := ParseScheme(tc.id)
		if err != nil {
			t.Errorf("ParseScheme(%q) error: %v", tc.id, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseScheme(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestParseSchemeUnknown(t *testing.T) {
	if _, err := ParseScheme("mispar-gadol"); err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}

func TestSchemeRoundTrip(t *testing.T) {
	for _, s := range Schemes() {
		parsed, err := ParseScheme(s.String())
		if err != nil {
			t.Fatalf("ParseScheme(%q) error: %v", s.String(), err)
		}
		if parsed != s {
			t.Fatalf("round trip of %v gave %v", s, parsed)
		}
	}
}

func TestSchemeLabels(t *testing.T) {
	for _, s := range Schemes() {
		if s.Label() == "" || s.String() == "" {
			t.Fatalf("scheme %d has empty label or identifier", int(s))
		}
	}
}
