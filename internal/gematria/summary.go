package gematria

import "strings"

// SchemeTotal pairs a scheme with the total it produces for some text.
type SchemeTotal struct {
	Scheme Scheme
	Total  int
}

// ComputeAll computes the text under every scheme and returns, in display
// order, the totals of the schemes that matched at least one letter.
func ComputeAll(text string) []SchemeTotal {
	var totals []SchemeTotal
	for _, s := range Schemes() {
		res := Compute(text, s)
		if len(res.Breakdown) == 0 {
			continue
		}
		totals = append(totals, SchemeTotal{Scheme: s, Total: res.Total})
	}
	return totals
}

// MisparKatan is the "small number": the sum of the digit-reduced values
// of a standard Hebrew breakdown.
func MisparKatan(r Result) int {
	total := 0
	for _, e := range r.Breakdown {
		total += Reduce(e.Value)
	}
	return total
}

// WordCount counts whitespace-separated words in the raw input.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
