package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"vaultstack/internal/adapters/console"
	"vaultstack/internal/application/commands"
	"vaultstack/internal/ports"
)

var previewOffline bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show what a transfer would create, without transferring",
	Long: `Walk the vault and report the books, chapters, pages, images and
attachments a transfer would create. Nothing is written to BookStack.

By default the connectivity check still runs so a bad URL or token
surfaces before a real transfer. Use --offline to skip it.

Example:
  vaultstack preview
  vaultstack preview --offline`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		source, err := newSource()
		if err != nil {
			return err
		}
		var client ports.ContentClient
		if !previewOffline {
			client = newClient(newLogger())
		}

		preview := commands.NewPreviewCommand(source, client, transferOptions())
		if err := preview.Validate(); err != nil {
			return err
		}
		result, err := preview.Execute(ctx)
		if err != nil {
			return err
		}

		console.Preview(os.Stdout, result)
		return nil
	},
}

func init() {
	previewCmd.Flags().BoolVar(&previewOffline, "offline", false, "skip the connectivity check")
	rootCmd.AddCommand(previewCmd)
}
