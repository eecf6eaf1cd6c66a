package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mshalev/gematria/internal/gematria"
)

var calcCmd = &cobra.Command{
	Use:   "calc <text>",
	Short: "Compute the value of a word or phrase",
	Long: `Compute the Gematria value of text and print the per-letter breakdown.

The scheme defaults to the configured one; pass --scheme to override,
or --all to print the total under every scheme matching the text.

Examples:
  gematria calc שלום
  gematria calc --scheme english-ordinal "Hello World"
  gematria calc --all Hello`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

var (
	calcScheme string
	calcAll    bool
)

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVarP(&calcScheme, "scheme", "s", "", "scheme identifier (see 'gematria schemes')")
	calcCmd.Flags().BoolVar(&calcAll, "all", false, "print totals under every matching scheme")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()
	text := strings.Join(args, " ")

	scheme, err := schemeFromFlag(calcScheme, cfg)
	if err != nil {
		return err
	}

	res := gematria.Compute(text, scheme)

	fmt.Printf("Text:   %s\n", text)
	fmt.Printf("Scheme: %s\n", scheme.Label())
	fmt.Printf("Total:  %d\n", res.Total)

	if len(res.Breakdown) == 0 {
		fmt.Printf("\nNo letters matched the %s alphabet.\n", alphabetName(scheme))
		return nil
	}

	fmt.Println()
	for _, e := range res.Breakdown {
		fmt.Printf("  %s  %d\n", e.Char, e.Value)
	}
	fmt.Println()

	fmt.Printf("Letters: %d  Words: %d\n", len(res.Breakdown), gematria.WordCount(text))
	if scheme.Hebrew() {
		fmt.Printf("Mispar Katan: %d\n", gematria.MisparKatan(res))
	}

	if calcAll {
		fmt.Println()
		fmt.Println("All schemes:")
		for _, st := range gematria.ComputeAll(text) {
			fmt.Printf("  %-18s %d\n", st.Scheme.Label(), st.Total)
		}
	}

	return nil
}

func alphabetName(s gematria.Scheme) string {
	if s.Hebrew() {
		return "Hebrew"
	}
	return "English"
}
