package gematria

import "unicode"

// BreakdownEntry is one letter of the input and its value, in input order.
// Char keeps the original glyph form (casing, final form) for display even
// though the lookup itself is normalized.
type BreakdownEntry struct {
	Char  string
	Value int
}

// Result is the complete output of a single computation. It is derived
// entirely from the input text and scheme and holds no other state.
type Result struct {
	Total     int
	Breakdown []BreakdownEntry
	Scheme    Scheme
}

// Compute maps text to its value under the given scheme.
//
// Non-letter characters (whitespace, punctuation, digits, Niqqud marks)
// are skipped entirely rather than valued at zero, so the breakdown holds
// exactly one entry per counted letter. Compute never fails: empty or
// all-non-letter input yields a zero total and an empty breakdown.
func Compute(text string, scheme Scheme) Result {
	res := Result{Scheme: scheme}
	if scheme.Hebrew() {
		text = stripMarks(text)
	}

	table := scheme.table()
	for _, r := range text {
		key := r
		if !scheme.Hebrew() {
			key = unicode.ToLower(r)
		}
		v, ok := table[key]
		if !ok {
			continue
		}
		res.Breakdown = append(res.Breakdown, BreakdownEntry{Char: string(r), Value: v})
		res.Total += v
	}
	return res
}

// Reduce applies digit-sum reduction: while v has more than one decimal
// digit, replace it with the sum of its digits. Reduce(26) = 8.
func Reduce(v int) int {
	for v >= 10 {
		sum := 0
		for v > 0 {
			sum += v % 10
			v /= 10
		}
		v = sum
	}
	return v
}
