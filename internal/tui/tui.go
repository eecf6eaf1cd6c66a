package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mshalev/gematria/internal/clipboard"
	"github.com/mshalev/gematria/internal/config"
	"github.com/mshalev/gematria/internal/gematria"
	"github.com/mshalev/gematria/internal/history"
	"github.com/mshalev/gematria/internal/share"
	"github.com/mshalev/gematria/internal/tui/bignum"
)

// Clipboard messages
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the Bubble Tea model for the calculator.
type Model struct {
	input textinput.Model
	cfg   *config.Config
	hist  *history.Ring

	scheme    gematria.Scheme
	inputText string
	result    *gematria.Result
	totals    []gematria.SchemeTotal
	showAll   bool

	copied bool

	width  int
	height int
	ready  bool
}

// New creates the TUI model. An initial text (e.g. decoded from a shared
// URL) is computed immediately.
func New(cfg *config.Config, initialText string, initialScheme gematria.Scheme) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a word or phrase..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorAccent)

	m := Model{
		input:  ti,
		cfg:    cfg,
		hist:   history.New(history.DefaultCapacity),
		scheme: initialScheme,
	}
	if initialText != "" {
		m.input.SetValue(initialText)
		m.calculate()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.calculate()
			return m, nil
		case "left", "shift+tab":
			m.cycleScheme(-1)
			return m, nil
		case "right", "tab":
			m.cycleScheme(1)
			return m, nil
		case "ctrl+a":
			m.showAll = !m.showAll
			return m, nil
		case "ctrl+y":
			// Copy the share link for the current calculation.
			if m.result != nil {
				url := share.URL(m.cfg.ShareBaseURL, m.inputText, m.scheme)
				if err := clipboard.Write(url); err == nil {
					m.copied = true
					return m, clearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// calculate computes the current input under the selected scheme and
// records it in the session history.
func (m *Model) calculate() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}

	m.inputText = text
	res := gematria.Compute(text, m.scheme)
	m.result = &res
	m.totals = gematria.ComputeAll(text)

	m.hist.Add(history.Entry{
		Input:  text,
		Scheme: m.scheme,
		Result: res,
	})
}

// cycleScheme moves the scheme selection and recomputes the current text.
func (m *Model) cycleScheme(delta int) {
	schemes := gematria.Schemes()
	idx := 0
	for i, s := range schemes {
		if s == m.scheme {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(schemes)) % len(schemes)
	m.scheme = schemes[idx]

	if m.inputText != "" {
		res := gematria.Compute(m.inputText, m.scheme)
		m.result = &res
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render("  Gematria Calculator  ") + "  " +
		subtitleStyle.Render("חשבון גימטריה")
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderSchemeBar())
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString(m.renderResult(*m.result))
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("  Type a word or phrase and press Enter"))
		b.WriteString("\n")
	}

	if m.hist.Len() > 0 {
		b.WriteString(m.renderHistory())
	}

	b.WriteString("\n")
	helpParts := []string{"←/→: scheme", "enter: calculate", "ctrl+a: all schemes"}
	if m.result != nil {
		helpParts = append(helpParts, "ctrl+y: copy link")
	}
	helpParts = append(helpParts, "esc: quit")
	b.WriteString(helpStyle.Render("  " + strings.Join(helpParts, " • ")))

	return b.String()
}

// renderSchemeBar renders the horizontal scheme selector.
func (m Model) renderSchemeBar() string {
	var tabs []string
	for _, s := range gematria.Schemes() {
		if s == m.scheme {
			tabs = append(tabs, schemeTabActiveStyle.Render(s.Label()))
		} else {
			tabs = append(tabs, schemeTabStyle.Render(s.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// renderResult renders the total, breakdown, and summary sections.
func (m Model) renderResult(res gematria.Result) string {
	var b strings.Builder

	if len(res.Breakdown) == 0 {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(fmt.Sprintf("  No %s letters in the input", alphabetName(res.Scheme))))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderTotal(res.Total))
	b.WriteString("\n")

	// Breakdown table
	var rows []string
	for i, line := range formatBreakdown(res.Breakdown) {
		if i == 0 {
			rows = append(rows, labelStyle.Render(line))
			continue
		}
		rows = append(rows, valueStyle.Render(line))
	}
	b.WriteString(boxStyle.Render(
		subtitleStyle.Render("Letter Breakdown") + "\n\n" + strings.Join(rows, "\n"),
	))
	b.WriteString("\n")

	b.WriteString(m.renderCounts(res))

	if m.showAll && len(m.totals) > 0 {
		b.WriteString(boxStyle.Render(
			subtitleStyle.Render("All Schemes") + "\n\n" +
				valueStyle.Render(strings.Join(formatSchemeTotals(m.totals), "\n")),
		))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTotal renders the prominent total, as block art when possible.
func (m Model) renderTotal(total int) string {
	text := strconv.Itoa(total)
	if m.cfg.BigTotal && bignum.Available() {
		maxCols := 60
		if m.width > 0 && m.width-8 < maxCols {
			maxCols = m.width - 8
		}
		if art := bignum.RenderBlock(text, 5, maxCols); art != "" {
			out := bigTotalStyle.Render(art)
			if m.copied {
				out += "  " + copiedStyle.Render("Link copied!")
			}
			return out
		}
	}

	out := totalStyle.Render(text)
	if m.copied {
		out += "  " + copiedStyle.Render("Link copied!")
	}
	return out
}

// renderCounts renders the letter/word counts and the Hebrew small number.
func (m Model) renderCounts(res gematria.Result) string {
	var b strings.Builder
	b.WriteString(m.renderRow("Letters", strconv.Itoa(len(res.Breakdown))))
	b.WriteString(m.renderRow("Words", strconv.Itoa(gematria.WordCount(m.inputText))))
	if res.Scheme.Hebrew() {
		b.WriteString(m.renderRow("Mispar Katan", strconv.Itoa(gematria.MisparKatan(res))))
	}
	return b.String()
}

// renderRow renders a label-value row.
func (m Model) renderRow(label, value string) string {
	return "  " + labelStyle.Render(label+":") + " " + valueStyle.Render(value) + "\n"
}

// renderHistory renders the recent-calculations box.
func (m Model) renderHistory() string {
	var lines []string
	for _, e := range m.hist.Entries() {
		line := fmt.Sprintf("%s  %s  %s",
			numberStyle.Render(pad(strconv.Itoa(e.Result.Total), 6)),
			letterStyle.Render(pad(history.DisplayText(e.Input), 33)),
			hintStyle.Render(e.Scheme.Label()),
		)
		lines = append(lines, line)
	}
	return historyBoxStyle.Render(
		subtitleStyle.Render("Recent Calculations") + "\n" + strings.Join(lines, "\n"),
	)
}

// alphabetName names the alphabet a scheme reads, for the no-match hint.
func alphabetName(s gematria.Scheme) string {
	if s.Hebrew() {
		return "Hebrew"
	}
	return "English"
}
