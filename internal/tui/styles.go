// Package tui provides the interactive terminal UI for the calculator.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#5B8DEF") // Blue - titles, Hebrew accents
	colorSecondary = lipgloss.Color("#D9A036") // Gold - English accents, subtitles
	colorAccent    = lipgloss.Color("#ffe66d") // Yellow - totals
	colorMuted     = lipgloss.Color("#666666") // Gray - help text
	colorSuccess   = lipgloss.Color("#a8e6cf") // Green - copied indicator
	colorText      = lipgloss.Color("#f1faee") // Light text
	colorLabel     = lipgloss.Color("#a8dadc") // Label color
	colorBg        = lipgloss.Color("#1a1a2e") // Dark background
	colorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	colorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Background(colorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	schemeTabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1).
			Margin(0, 1)

	schemeTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				Background(colorBgAlt).
				Padding(0, 1).
				Margin(0, 1)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorBgAlt).
			Padding(1, 4).
			Margin(1, 0)

	bigTotalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Margin(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	letterStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	numberStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	historyBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSecondary).
			Padding(0, 2).
			Margin(1, 0)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)
)
