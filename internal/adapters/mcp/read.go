package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultstack/internal/application/commands"
	"vaultstack/internal/domain"
	"vaultstack/internal/ports"
)

// RegisterReadTools adds the read-only vault inspection tools to the MCP
// server. None of them contact a BookStack instance.
func RegisterReadTools(s *server.MCPServer, source ports.DocumentSource, opts commands.TransferOptions) {
	s.AddTool(structureTool(), structureHandler(source))
	s.AddTool(previewTool(), previewHandler(source, opts))
	s.AddTool(referencesTool(), referencesHandler(source))
}

// --- vault_structure ---

func structureTool() mcp.Tool {
	return mcp.NewTool("vault_structure",
		mcp.WithDescription("Show the book/chapter/page structure a migration would create from the vault, as a tree."),
	)
}

func structureHandler(source ports.DocumentSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hierarchy, err := source.Hierarchy()
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, book := range hierarchy.Books {
			fmt.Fprintf(&sb, "%s\n", domain.BookDisplayName(book.Name))
			for _, chapter := range book.Chapters {
				indent := "  "
				if chapter.Name != domain.RootBucket {
					fmt.Fprintf(&sb, "  %s\n", domain.ChapterDisplayName(chapter.Name))
					indent = "    "
				}
				for _, file := range chapter.Files {
					fmt.Fprintf(&sb, "%s%s\n", indent, file.RelPath)
				}
			}
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No markdown documents found."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- migration_preview ---

func previewTool() mcp.Tool {
	return mcp.NewTool("migration_preview",
		mcp.WithDescription("Dry-run the migration: report the books, chapters, pages and referenced media that a transfer would create, including missing files."),
	)
}

func previewHandler(source ports.DocumentSource, opts commands.TransferOptions) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewPreviewCommand(source, nil, opts)
		if err := cmd.Validate(); err != nil {
			return toolError(err)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Shelf: %s\n", result.ShelfName)
		fmt.Fprintf(&sb, "Books: %d  Chapters: %d  Pages: %d  Images: %d  Attachments: %d\n\n",
			len(result.Books), result.Chapters, result.Pages, result.Images, result.Attachments)
		for _, book := range result.Books {
			fmt.Fprintf(&sb, "%s\n", book.DisplayName)
			for _, chapter := range book.Chapters {
				indent := "  "
				if chapter.Name != domain.RootBucket {
					fmt.Fprintf(&sb, "  %s\n", chapter.DisplayName)
					indent = "    "
				}
				for _, page := range chapter.Pages {
					fmt.Fprintf(&sb, "%s%s\n", indent, page.Title)
					for _, asset := range page.Assets {
						mark := "✓"
						if !asset.Exists {
							mark = "✗ missing"
						}
						fmt.Fprintf(&sb, "%s  [%s] %s %s\n", indent, asset.Kind, asset.Name, mark)
					}
				}
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- document_references ---

func referencesTool() mcp.Tool {
	return mcp.NewTool("document_references",
		mcp.WithDescription("List the image and attachment references of one vault document and where each resolves on disk."),
		mcp.WithString("path",
			mcp.Description("Document path relative to the vault root (e.g. Projects/notes.md)"),
			mcp.Required(),
		),
	)
}

func referencesHandler(source ports.DocumentSource) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		relPath := req.GetString("path", "")
		if relPath == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		file, err := findDocument(source, relPath)
		if err != nil {
			return toolError(err)
		}
		doc, err := source.Read(file)
		if err != nil {
			return toolError(err)
		}

		refs := append(append([]domain.Reference{}, doc.Images...), doc.Attachments...)
		if len(refs) == 0 {
			return mcp.NewToolResultText("No references."), nil
		}

		var sb strings.Builder
		for _, ref := range refs {
			fmt.Fprintf(&sb, "[%s] %s -> %s\n", ref.Kind, ref.Target, ref.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func findDocument(source ports.DocumentSource, relPath string) (domain.DocumentFile, error) {
	hierarchy, err := source.Hierarchy()
	if err != nil {
		return domain.DocumentFile{}, err
	}
	for _, book := range hierarchy.Books {
		for _, chapter := range book.Chapters {
			for _, file := range chapter.Files {
				if file.RelPath == relPath {
					return file, nil
				}
			}
		}
	}
	return domain.DocumentFile{}, fmt.Errorf("document not found: %s", relPath)
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
