package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/chris-regnier/protocolctl/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration in effect after merging defaults, the config file,
PROTOCOLCTL_* environment variables and command-line flags.

The output is valid config.toml content.`,
	Example: `  protocolctl config
  protocolctl config > ~/.config/protocolctl/config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configRun(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		return nil
	},
}

func configRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, appConfig)
	}
	return toml.NewEncoder(w).Encode(appConfig)
}

func init() {
	rootCmd.AddCommand(configCmd)
}
