package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mshalev/gematria/internal/gematria"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available schemes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range gematria.Schemes() {
			fmt.Printf("  %-20s %s\n", s.String(), s.Label())
		}
	},
}

func init() {
	rootCmd.AddCommand(schemesCmd)
}
