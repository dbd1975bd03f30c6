package commands

import (
	"context"
	"os"

	"vaultstack/internal/application"
	"vaultstack/internal/domain"
	"vaultstack/internal/ports"
)

// AssetPreview is one would-be upload: the resolved file and whether it
// still exists at report time. Resolution already implies existence, so
// the recheck is a sanity signal, not a filter.
type AssetPreview struct {
	Name   string
	Kind   domain.Kind
	Exists bool
}

// PagePreview is one document as it would appear on the target.
type PagePreview struct {
	Title  string
	Assets []AssetPreview
}

// ChapterPreview groups the pages of one would-be chapter.
type ChapterPreview struct {
	Name        string
	DisplayName string
	Pages       []PagePreview
}

// BookPreview groups the chapters of one would-be book.
type BookPreview struct {
	Name        string
	DisplayName string
	Chapters    []ChapterPreview
}

// PreviewResult aggregates the structure a transfer would create,
// without touching the remote target.
type PreviewResult struct {
	ShelfName   string
	Books       []BookPreview
	Chapters    int
	Pages       int
	Images      int
	Attachments int
}

// PreviewCommand replays the transfer traversal and resolution without
// any creation, upload or update calls. When a client is supplied the
// connectivity check still runs first, matching the real transfer's
// entry condition.
type PreviewCommand struct {
	source  ports.DocumentSource
	client  ports.ContentClient // optional; nil skips the connectivity check
	Options TransferOptions
}

// NewPreviewCommand creates a new PreviewCommand.
func NewPreviewCommand(source ports.DocumentSource, client ports.ContentClient, opts TransferOptions) *PreviewCommand {
	return &PreviewCommand{source: source, client: client, Options: opts}
}

// Validate checks the command has everything it needs.
func (c *PreviewCommand) Validate() error {
	if c.source == nil {
		return &application.ValidationError{Field: "source", Message: "document source is required"}
	}
	return nil
}

// Execute builds the preview.
func (c *PreviewCommand) Execute(ctx context.Context) (*PreviewResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.client != nil {
		if err := c.client.VerifyConnectivity(ctx); err != nil {
			return nil, err
		}
	}

	hierarchy, err := c.source.Hierarchy()
	if err != nil {
		return nil, err
	}
	if !c.Options.PreserveStructure {
		hierarchy = hierarchy.Collapse(c.Options.BookName)
	}

	result := &PreviewResult{ShelfName: c.Options.ShelfName}
	for _, book := range hierarchy.Books {
		bp := BookPreview{Name: book.Name, DisplayName: domain.BookDisplayName(book.Name)}
		for _, chapter := range book.Chapters {
			cp := ChapterPreview{Name: chapter.Name, DisplayName: domain.ChapterDisplayName(chapter.Name)}
			if chapter.Name != domain.RootBucket {
				result.Chapters++
			}
			for _, file := range chapter.Files {
				doc, err := c.source.Read(file)
				if err != nil {
					continue
				}
				pp := PagePreview{Title: doc.Title}
				for _, ref := range append(doc.Images, doc.Attachments...) {
					pp.Assets = append(pp.Assets, AssetPreview{
						Name:   ref.FileName(),
						Kind:   ref.Kind,
						Exists: fileStillExists(ref.Path),
					})
				}
				result.Pages++
				result.Images += len(doc.Images)
				result.Attachments += len(doc.Attachments)
				cp.Pages = append(cp.Pages, pp)
			}
			bp.Chapters = append(bp.Chapters, cp)
		}
		result.Books = append(result.Books, bp)
	}
	return result, nil
}

func fileStillExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
