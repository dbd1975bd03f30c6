package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"vaultstack/internal/adapters/bookstack"
	"vaultstack/internal/adapters/filesystem"
	"vaultstack/internal/adapters/frontmatter"
	"vaultstack/internal/application/commands"
	"vaultstack/internal/config"
	"vaultstack/internal/ports"
)

var (
	configPath string
	verbose    bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vaultstack",
	Short: "Migrate Obsidian vaults into BookStack",
	Long: `vaultstack transfers the markdown documents of an Obsidian vault
into a BookStack instance, mapping folders onto books and chapters,
uploading referenced images and attachments, and rewriting the links
in each page to point at the uploaded copies.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup writes the config, so it must run without one
		switch cmd.Name() {
		case "help", "completion", "setup":
			return nil
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("%w (run 'vaultstack setup' to create one)", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger() hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "vaultstack",
		Level:  level,
		Output: os.Stderr,
	})
}

func newSource() (ports.DocumentSource, error) {
	return filesystem.NewSource(cfg.Obsidian.VaultPath, frontmatter.ForName(cfg.Transfer.MetadataParser))
}

func newClient(log hclog.Logger) *bookstack.Client {
	return bookstack.New(bookstack.Config{
		URL:         cfg.BookStack.URL,
		TokenID:     cfg.BookStack.TokenID,
		TokenSecret: cfg.BookStack.TokenSecret,
		Logger:      log,
	})
}

func transferOptions() commands.TransferOptions {
	return commands.TransferOptions{
		ShelfName:         cfg.Transfer.ShelfName,
		BookName:          cfg.Transfer.BookName,
		PreserveStructure: cfg.Transfer.PreserveStructure,
		CreateChapters:    cfg.Transfer.CreateChapters,
	}
}
