package gematria

import (
	"reflect"
	"testing"
)

func values(r Result) []int {
	vals := make([]int, 0, len(r.Breakdown))
	for _, e := range r.Breakdown {
		vals = append(vals, e.Value)
	}
	return vals
}

func TestComputeHebrewStandard(t *testing.T) {
	res := Compute("אבג", HebrewStandard)
	if res.Total != 6 {
		t.Fatalf("total = %d, want 6", res.Total)
	}
	if got, want := values(res), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("breakdown values = %v, want %v", got, want)
	}
	if res.Scheme != HebrewStandard {
		t.Fatalf("scheme = %v, want %v", res.Scheme, HebrewStandard)
	}
}

func TestComputeHebrewFinalForms(t *testing.T) {
	finals := map[string]int{"ך": 20, "ם": 40, "ן": 50, "ף": 80, "ץ": 90}
	for letter, want := range finals {
		res := Compute(letter, HebrewStandard)
		if res.Total != want {
			t.Errorf("Compute(%q) total = %d, want %d", letter, res.Total, want)
		}
	}
}

func TestComputeStripsNiqqud(t *testing.T) {
	plain := Compute("שלום", HebrewStandard)
	pointed := Compute("שָׁלוֹם", HebrewStandard)
	if !reflect.DeepEqual(plain, pointed) {
		t.Fatalf("pointed text differs from plain: %+v vs %+v", pointed, plain)
	}
	if plain.Total != 376 {
		t.Fatalf("total = %d, want 376", plain.Total)
	}
	if len(plain.Breakdown) != 4 {
		t.Fatalf("breakdown has %d entries, want 4", len(plain.Breakdown))
	}
}

func TestComputeEnglishOrdinal(t *testing.T) {
	res := Compute("ABC", EnglishOrdinal)
	if res.Total != 6 {
		t.Fatalf("total = %d, want 6", res.Total)
	}
	if got, want := values(res), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("breakdown values = %v, want %v", got, want)
	}

	lower := Compute("abc", EnglishOrdinal)
	if lower.Total != res.Total {
		t.Fatalf("case sensitivity: %d vs %d", lower.Total, res.Total)
	}
}

func TestComputeKeepsOriginalCasing(t *testing.T) {
	res := Compute("Ab", EnglishOrdinal)
	if res.Breakdown[0].Char != "A" || res.Breakdown[1].Char != "b" {
		t.Fatalf("breakdown chars = %+v, want original casing", res.Breakdown)
	}
}

func TestComputeEnglishReverseOrdinal(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Z", 1},
		{"A", 26},
		{"az", 27},
	}
	for _, tc := range cases {
		res := Compute(tc.text, EnglishReverseOrdinal)
		if res.Total != tc.want {
			t.Errorf("Compute(%q) total = %d, want %d", tc.text, res.Total, tc.want)
		}
	}
}

func TestComputeReductionSchemes(t *testing.T) {
	res := Compute("Z", EnglishFullReduction)
	if res.Total != 8 {
		t.Fatalf("Z full reduction total = %d, want 8", res.Total)
	}
	if got, want := values(res), []int{8}; !reflect.DeepEqual(got, want) {
		t.Fatalf("breakdown values = %v, want %v", got, want)
	}

	// Per-letter reduction sums, not a reduced grand total: zz = 8+8.
	if got := Compute("zz", EnglishFullReduction).Total; got != 16 {
		t.Fatalf("zz full reduction total = %d, want 16", got)
	}

	// Reverse reduction: A reversed is 26, reduced to 8.
	if got := Compute("A", EnglishReverseReduction).Total; got != 8 {
		t.Fatalf("A reverse reduction total = %d, want 8", got)
	}
}

func TestComputeSkipsNonLetters(t *testing.T) {
	for _, scheme := range Schemes() {
		for _, text := range []string{"", "123", "!?.,", "😀", " \t\n"} {
			res := Compute(text, scheme)
			if res.Total != 0 {
				t.Errorf("Compute(%q, %v) total = %d, want 0", text, scheme, res.Total)
			}
			if len(res.Breakdown) != 0 {
				t.Errorf("Compute(%q, %v) breakdown = %v, want empty", text, scheme, res.Breakdown)
			}
		}
	}

	// Mixed input counts only letters of the scheme's alphabet.
	res := Compute("a1 b!", EnglishOrdinal)
	if res.Total != 3 || len(res.Breakdown) != 2 {
		t.Fatalf("mixed input: total = %d breakdown = %v", res.Total, res.Breakdown)
	}
}

func TestComputeIdempotent(t *testing.T) {
	first := Compute("Hello World", EnglishReverseReduction)
	second := Compute("Hello World", EnglishReverseReduction)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestReduce(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 1},
		{9, 9},
		{10, 1},
		{26, 8},
		{99, 9},
		{400, 4},
	}
	for _, tc := range cases {
		if got := Reduce(tc.in); got != tc.want {
			t.Errorf("Reduce(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
