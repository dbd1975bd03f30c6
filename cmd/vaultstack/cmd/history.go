package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"vaultstack/internal/adapters/console"
	"vaultstack/internal/adapters/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past transfer runs for the configured vault",
	Long: `List the recorded transfer runs for the configured vault, most
recent first, with their counters and any collected errors.

Example:
  vaultstack history
  vaultstack history --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := newSource()
		if err != nil {
			return err
		}

		journal, err := sqlite.Open(source.Root())
		if err != nil {
			return err
		}
		defer journal.Close()

		runs, err := journal.Recent(historyLimit)
		if err != nil {
			return err
		}

		console.History(os.Stdout, runs)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
