package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vaultstack/internal/adapters/console"
	"vaultstack/internal/application/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the BookStack connection and API permissions",
	Long: `Run a series of probes against the configured BookStack instance:
connectivity, book listing, book creation and deletion, and the pages
and chapters endpoints. Creation is probed with a temporary book that
is deleted right away.

Example:
  vaultstack check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client := newClient(newLogger())

		check := commands.NewCheckCommand(client)
		report, err := check.Execute(ctx)
		if err != nil {
			return err
		}

		console.Check(os.Stdout, report)
		if !report.Healthy {
			return fmt.Errorf("one or more checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
