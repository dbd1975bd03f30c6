package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vaultstack/internal/adapters/console"
	"vaultstack/internal/adapters/sqlite"
	"vaultstack/internal/application/commands"
	"vaultstack/internal/domain"
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer the vault into BookStack",
	Long: `Transfer every markdown document of the configured vault into the
configured BookStack instance, creating the shelf, books, chapters and
pages, and uploading referenced images and attachments.

Example:
  vaultstack transfer`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		log := newLogger()

		source, err := newSource()
		if err != nil {
			return err
		}
		client := newClient(log)
		reporter := console.NewReporter(os.Stdout)

		transfer := commands.NewTransferCommand(source, client, reporter, log, transferOptions())
		if err := transfer.Validate(); err != nil {
			return err
		}

		started := time.Now()
		result, err := transfer.Execute(ctx)
		if err != nil {
			return err
		}

		console.Summary(os.Stdout, result.Stats)
		recordRun(source.Root(), started, result)

		if !result.Success {
			return fmt.Errorf("transfer finished without creating any pages")
		}
		return nil
	},
}

// recordRun writes the run to the journal. Journal failures only warn;
// the transfer itself already happened.
func recordRun(vaultPath string, started time.Time, result *commands.TransferResult) {
	journal, err := sqlite.Open(vaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open run journal: %v\n", err)
		return
	}
	defer journal.Close()

	err = journal.Record(domain.RunRecord{
		StartedAt:  started,
		FinishedAt: time.Now(),
		VaultPath:  vaultPath,
		ShelfName:  cfg.Transfer.ShelfName,
		Success:    result.Success,
		Stats:      result.Stats,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func init() {
	rootCmd.AddCommand(transferCmd)
}
