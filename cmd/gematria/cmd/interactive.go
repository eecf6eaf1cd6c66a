package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive TUI",
	Long: `Launch the interactive terminal UI.

Features:
  - Type any text to see its value and per-letter breakdown
  - Switch between the five schemes with the arrow keys
  - Copy a shareable link for the current calculation
  - The five most recent calculations stay on screen

Controls:
  Enter    Calculate
  ←/→      Switch scheme
  Ctrl+A   Toggle all-schemes summary
  Ctrl+Y   Copy share link
  Esc      Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
