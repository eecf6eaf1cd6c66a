package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mshalev/gematria/internal/gematria"
)

// formatBreakdown renders the letter/value table as plain aligned lines.
// Hebrew letters can be wider than one terminal cell, so columns are
// padded by display width rather than rune count.
func formatBreakdown(entries []gematria.BreakdownEntry) []string {
	charWidth := runewidth.StringWidth("Letter")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Char); w > charWidth {
			charWidth = w
		}
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, pad("Letter", charWidth)+"  Value")
	for _, e := range entries {
		lines = append(lines, pad(e.Char, charWidth)+"  "+fmt.Sprintf("%d", e.Value))
	}
	return lines
}

// formatSchemeTotals renders per-scheme totals as aligned label/value lines.
func formatSchemeTotals(totals []gematria.SchemeTotal) []string {
	labelWidth := 0
	for _, st := range totals {
		if w := runewidth.StringWidth(st.Scheme.Label()); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(totals))
	for _, st := range totals {
		lines = append(lines, pad(st.Scheme.Label(), labelWidth)+"  "+fmt.Sprintf("%d", st.Total))
	}
	return lines
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
