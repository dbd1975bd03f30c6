package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultstack/internal/adapters/tui"
	"vaultstack/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively create or edit the config file",
	Long: `Open an interactive form for the BookStack connection and vault
settings. An existing config pre-fills the form; submitting writes the
result back to the config path.

Example:
  vaultstack setup`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := config.Default()
		if existing, err := config.Load(configPath); err == nil {
			seed = *existing
		}
		if err := tui.RunSetup(configPath, seed); err != nil {
			return fmt.Errorf("setup failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
