package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"vaultstack/internal/application"
	"vaultstack/internal/domain"
	"vaultstack/internal/ports"
)

// TransferOptions are the structure-mapping settings for one run.
type TransferOptions struct {
	ShelfName         string
	BookName          string
	PreserveStructure bool
	CreateChapters    bool
}

// TransferResult contains the outcome of a transfer run. Success means
// at least one page was created, independent of how many sub-operations
// failed.
type TransferResult struct {
	Stats   domain.TransferStats
	ShelfID int
	Success bool
}

type chapterKey struct {
	bookID int
	name   string
}

// TransferCommand migrates a vault into the remote target: books from
// first-level folders, chapters from the rest, pages from documents,
// with asset upload and reference rewriting per page.
type TransferCommand struct {
	source   ports.DocumentSource
	client   ports.ContentClient
	reporter ports.Reporter
	log      hclog.Logger
	Options  TransferOptions

	// run-scoped state, reset on every Execute
	books          map[string]int
	chapters       map[chapterKey]int
	createdBookIDs []int
	stats          domain.TransferStats
}

// NewTransferCommand creates a new TransferCommand.
func NewTransferCommand(source ports.DocumentSource, client ports.ContentClient, reporter ports.Reporter, log hclog.Logger, opts TransferOptions) *TransferCommand {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &TransferCommand{
		source:   source,
		client:   client,
		reporter: reporter,
		log:      log.Named("transfer"),
		Options:  opts,
	}
}

// Validate checks the command has everything it needs.
func (c *TransferCommand) Validate() error {
	if c.source == nil {
		return &application.ValidationError{Field: "source", Message: "document source is required"}
	}
	if c.client == nil {
		return &application.ValidationError{Field: "client", Message: "content client is required"}
	}
	if c.Options.ShelfName == "" {
		return &application.ValidationError{Field: "shelfName", Message: "shelf name is required"}
	}
	return nil
}

// Execute runs the full transfer. The returned error is non-nil only for
// fatal conditions (validation, connectivity, vault walk); all scoped
// failures are collected in the result's stats.
func (c *TransferCommand) Execute(ctx context.Context) (*TransferResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.books = make(map[string]int)
	c.chapters = make(map[chapterKey]int)
	c.createdBookIDs = nil
	c.stats = domain.TransferStats{}

	c.publish(domain.Event{Kind: domain.EventTransferStarted, Name: c.source.Root()})

	if err := c.client.VerifyConnectivity(ctx); err != nil {
		return nil, err
	}
	c.publish(domain.Event{Kind: domain.EventConnectivityOK, Detail: c.client.BaseURL()})

	hierarchy, err := c.source.Hierarchy()
	if err != nil {
		return nil, err
	}
	if !c.Options.PreserveStructure {
		hierarchy = hierarchy.Collapse(c.Options.BookName)
	}
	c.log.Debug("hierarchy built", "books", len(hierarchy.Books), "documents", hierarchy.DocumentCount())

	for _, book := range hierarchy.Books {
		c.transferBook(ctx, book)
	}

	shelfID := c.assembleShelf(ctx)

	return &TransferResult{
		Stats:   c.stats,
		ShelfID: shelfID,
		Success: c.stats.PagesCreated > 0,
	}, nil
}

// transferBook creates one book and everything below it. A failed book
// creation skips the whole sub-tree.
func (c *TransferCommand) transferBook(ctx context.Context, book *domain.Book) {
	display := domain.BookDisplayName(book.Name)
	description := fmt.Sprintf("Content transferred from Obsidian - Folder: %s", book.Name)

	bookID, err := c.client.CreateBook(ctx, display, description)
	if err != nil {
		cerr := &domain.CreationError{Entity: "book", Name: display, Cause: err}
		c.stats.AddError("book", display, cerr.Error())
		c.publish(domain.Event{Kind: domain.EventBookFailed, Name: display, Err: cerr})
		return
	}
	c.books[book.Name] = bookID
	c.createdBookIDs = append(c.createdBookIDs, bookID)
	c.stats.BooksCreated++
	c.publish(domain.Event{Kind: domain.EventBookCreated, Name: display, Detail: strconv.Itoa(bookID)})

	for _, chapter := range book.Chapters {
		c.transferChapter(ctx, bookID, display, chapter)
	}
}

// transferChapter creates the chapter (unless the documents sit directly
// in the book) and transfers its documents. A failed chapter creation
// skips only that chapter's documents.
func (c *TransferCommand) transferChapter(ctx context.Context, bookID int, bookDisplay string, chapter *domain.Chapter) {
	chapterID := 0
	location := bookDisplay

	if chapter.Name != domain.RootBucket && c.Options.CreateChapters {
		display := domain.ChapterDisplayName(chapter.Name)
		description := fmt.Sprintf("Chapter for folder: %s", chapter.Name)

		id, err := c.client.CreateChapter(ctx, bookID, display, description)
		if err != nil {
			cerr := &domain.CreationError{Entity: "chapter", Name: display, Cause: err}
			c.stats.AddError("chapter", display, cerr.Error())
			c.publish(domain.Event{Kind: domain.EventChapterFailed, Name: display, Err: cerr})
			return
		}
		c.chapters[chapterKey{bookID: bookID, name: chapter.Name}] = id
		c.stats.ChaptersCreated++
		chapterID = id
		location = bookDisplay + " → " + display
		c.publish(domain.Event{Kind: domain.EventChapterCreated, Name: display, Detail: strconv.Itoa(id)})
	}

	for _, file := range chapter.Files {
		c.transferDocument(ctx, bookID, chapterID, location, file)
	}
}

// transferDocument reads one document, creates its page, uploads its
// assets and updates the page body once if anything was rewritten.
func (c *TransferCommand) transferDocument(ctx context.Context, bookID, chapterID int, location string, file domain.DocumentFile) {
	doc, err := c.source.Read(file)
	if err != nil {
		c.stats.AddError("page", file.RelPath, err.Error())
		c.publish(domain.Event{Kind: domain.EventDocumentSkipped, Name: file.RelPath, Err: err})
		return
	}

	pageID, err := c.client.CreatePage(ctx, bookID, doc.Title, doc.Body, chapterID)
	if err != nil {
		cerr := &domain.CreationError{Entity: "page", Name: doc.Title, Cause: err}
		c.stats.PagesFailed++
		c.stats.AddError("page", doc.Title, cerr.Error())
		c.publish(domain.Event{Kind: domain.EventPageFailed, Name: doc.Title, Err: cerr})
		return
	}

	refs := c.uploadAssets(ctx, doc, pageID)

	if newBody := domain.RewriteBody(doc.Body, refs); newBody != doc.Body {
		if err := c.client.UpdatePage(ctx, pageID, newBody); err != nil {
			uerr := &domain.UpdateError{PageID: pageID, Cause: err}
			c.stats.AddError("page", doc.Title, uerr.Error())
			c.publish(domain.Event{Kind: domain.EventPageUpdateFailed, Name: doc.Title, Err: uerr})
		} else {
			c.publish(domain.Event{Kind: domain.EventPageUpdated, Name: doc.Title})
		}
	}

	c.stats.PagesCreated++
	c.publish(domain.Event{
		Kind:   domain.EventPageCreated,
		Name:   doc.Title,
		Detail: location + mediaSuffix(len(doc.Images), len(doc.Attachments)),
	})
}

// uploadAssets pushes every resolved reference independently; one failed
// upload does not block the others, its original span stays in the body.
func (c *TransferCommand) uploadAssets(ctx context.Context, doc *domain.ParsedDocument, pageID int) []domain.Reference {
	refs := make([]domain.Reference, 0, len(doc.Images)+len(doc.Attachments))

	for _, ref := range doc.Images {
		url, err := c.client.UploadImage(ctx, ref.Path, pageID)
		if err != nil {
			uerr := &domain.UploadError{Kind: ref.Kind, Name: ref.FileName(), Cause: err}
			c.stats.ImagesFailed++
			c.stats.AddError("image", ref.FileName(), uerr.Error())
			c.publish(domain.Event{Kind: domain.EventImageFailed, Name: ref.FileName(), Err: uerr})
		} else {
			ref.ReplacementURL = url
			c.stats.ImagesUploaded++
			c.publish(domain.Event{Kind: domain.EventImageUploaded, Name: ref.FileName(), Detail: url})
		}
		refs = append(refs, ref)
	}

	for _, ref := range doc.Attachments {
		id, err := c.client.UploadAttachment(ctx, ref.Path, pageID)
		if err != nil {
			uerr := &domain.UploadError{Kind: ref.Kind, Name: ref.FileName(), Cause: err}
			c.stats.AttachmentsFailed++
			c.stats.AddError("attachment", ref.FileName(), uerr.Error())
			c.publish(domain.Event{Kind: domain.EventAttachmentFailed, Name: ref.FileName(), Err: uerr})
		} else {
			ref.ReplacementURL = c.client.BaseURL() + "/attachments/" + strconv.Itoa(id)
			c.stats.AttachmentsUploaded++
			c.publish(domain.Event{Kind: domain.EventAttachmentUploaded, Name: ref.FileName(), Detail: ref.ReplacementURL})
		}
		refs = append(refs, ref)
	}

	return refs
}

// assembleShelf attaches every created book to the configured shelf in
// one batch. Runs only when at least one book exists; failures are
// reported but retract nothing.
func (c *TransferCommand) assembleShelf(ctx context.Context) int {
	if len(c.createdBookIDs) == 0 {
		return 0
	}

	description := fmt.Sprintf("Main shelf with %d books transferred from Obsidian", len(c.createdBookIDs))
	shelfID, err := c.client.CreateShelf(ctx, c.Options.ShelfName, description)
	if err != nil {
		cerr := &domain.CreationError{Entity: "shelf", Name: c.Options.ShelfName, Cause: err}
		c.stats.AddError("shelf", c.Options.ShelfName, cerr.Error())
		c.publish(domain.Event{Kind: domain.EventShelfFailed, Name: c.Options.ShelfName, Err: cerr})
		return 0
	}
	c.publish(domain.Event{Kind: domain.EventShelfCreated, Name: c.Options.ShelfName, Detail: strconv.Itoa(shelfID)})

	if err := c.client.AttachBooks(ctx, shelfID, c.createdBookIDs); err != nil {
		c.stats.AddError("shelf", c.Options.ShelfName, fmt.Sprintf("attaching books: %v", err))
		c.publish(domain.Event{Kind: domain.EventShelvingFailed, Name: c.Options.ShelfName, Err: err})
	} else {
		c.publish(domain.Event{Kind: domain.EventBooksShelved, Name: c.Options.ShelfName, Detail: strconv.Itoa(len(c.createdBookIDs))})
	}
	return shelfID
}

func (c *TransferCommand) publish(e domain.Event) {
	if c.reporter != nil {
		c.reporter.Publish(e)
	}
}

func mediaSuffix(images, attachments int) string {
	if images == 0 && attachments == 0 {
		return ""
	}
	var parts []string
	if images > 0 {
		parts = append(parts, fmt.Sprintf("%d images", images))
	}
	if attachments > 0 {
		parts = append(parts, fmt.Sprintf("%d attachments", attachments))
	}
	out := " ("
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out + ")"
}
