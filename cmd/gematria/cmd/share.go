package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mshalev/gematria/internal/gematria"
	"github.com/mshalev/gematria/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share <text>",
	Short: "Create or decode a shareable calculation link",
	Long: `Encode text and scheme as a URL query string so the calculation can
be reproduced from the link. With --decode, parse a query string back and
compute it; an unknown scheme identifier falls back to the default.

Examples:
  gematria share --scheme english-ordinal "Hello World"
  gematria share --decode "text=%D7%A9%D7%9C%D7%95%D7%9D&scheme=hebrew-standard"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShare,
}

var (
	shareScheme string
	shareDecode bool
)

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().StringVarP(&shareScheme, "scheme", "s", "", "scheme identifier (see 'gematria schemes')")
	shareCmd.Flags().BoolVar(&shareDecode, "decode", false, "decode a query string instead of encoding")
}

func runShare(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	if shareDecode {
		text, scheme := share.Decode(args[0])
		res := gematria.Compute(text, scheme)
		fmt.Printf("Text:   %s\n", text)
		fmt.Printf("Scheme: %s\n", scheme.Label())
		fmt.Printf("Total:  %d\n", res.Total)
		return nil
	}

	text := strings.Join(args, " ")
	scheme, err := schemeFromFlag(shareScheme, cfg)
	if err != nil {
		return err
	}

	fmt.Println(share.URL(cfg.ShareBaseURL, text, scheme))
	return nil
}
