package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultstack/internal/adapters/filesystem"
	"vaultstack/internal/adapters/frontmatter"
	mcpadapter "vaultstack/internal/adapters/mcp"
	"vaultstack/internal/application/commands"
	"vaultstack/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", "", "path to the Obsidian vault (defaults to the configured one)")
	configFlag := flag.String("config", config.DefaultPath(), "path to the config file")
	flag.Parse()

	cfg := config.Default()
	if loaded, err := config.Load(*configFlag); err == nil {
		cfg = *loaded
	}
	vaultPath := cfg.Obsidian.VaultPath
	if *vaultFlag != "" {
		vaultPath = *vaultFlag
	}
	if vaultPath == "" {
		log.Fatal("vaultstack-mcp: no vault path; pass -vault or configure obsidian.vault_path")
	}

	source, err := filesystem.NewSource(vaultPath, frontmatter.ForName(cfg.Transfer.MetadataParser))
	if err != nil {
		log.Fatalf("vaultstack-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"vaultstack-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, source, commands.TransferOptions{
		ShelfName:         cfg.Transfer.ShelfName,
		BookName:          cfg.Transfer.BookName,
		PreserveStructure: cfg.Transfer.PreserveStructure,
		CreateChapters:    cfg.Transfer.CreateChapters,
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("vaultstack-mcp: %v", err)
	}
}
