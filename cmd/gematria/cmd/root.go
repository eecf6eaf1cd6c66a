// Package cmd contains all CLI commands for the gematria tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mshalev/gematria/internal/config"
	"github.com/mshalev/gematria/internal/gematria"
	"github.com/mshalev/gematria/internal/share"
	"github.com/mshalev/gematria/internal/tui"
)

var (
	cfgFile    string
	shareQuery string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gematria",
	Short: "Gematria calculator for Hebrew and English text",
	Long: `gematria maps text to numeric values under the classic
letter-to-number schemes:

  - Hebrew Standard (Mispar Hechrachi): Aleph=1 .. Tav=400
  - English Ordinal: A=1 .. Z=26
  - Full Reduction: ordinal values digit-reduced per letter
  - Reverse Ordinal: Z=1 .. A=26
  - Reverse Reduction: reverse values digit-reduced per letter

Hebrew Niqqud marks are ignored; non-letter characters are skipped.

Running 'gematria' without arguments launches the interactive TUI.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/gematria)")
	rootCmd.Flags().StringVar(&shareQuery, "share", "", "shared query string to open with (text=...&scheme=...)")
}

// initConfig sets the config directory and reads env variables.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "gematria"))
	}

	viper.SetEnvPrefix("GEMATRIA")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig loads the config file, writing the defaults on first run.
func loadUserConfig() *config.Config {
	dir := getConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config.Default()
	}

	if _, err := os.Stat(filepath.Join(dir, config.FileName)); os.IsNotExist(err) {
		if err := config.Save(dir, config.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write default config: %v\n", err)
		}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return config.Default()
	}
	return cfg
}

// runTUI launches the interactive TUI.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	text := ""
	scheme := cfg.Scheme()
	if shareQuery != "" {
		text, scheme = share.Decode(shareQuery)
	}

	p := tea.NewProgram(
		tui.New(cfg, text, scheme),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// schemeFromFlag resolves a --scheme flag value, defaulting to the config.
func schemeFromFlag(id string, cfg *config.Config) (gematria.Scheme, error) {
	if id == "" {
		return cfg.Scheme(), nil
	}
	return gematria.ParseScheme(id)
}
