package ports

import (
	"context"

	"vaultstack/internal/domain"
)

// ContentClient is the remote content-management target. Every call
// blocks until the remote API answers; failures are plain errors the
// orchestrator maps onto its taxonomy.
type ContentClient interface {
	// VerifyConnectivity checks the target is reachable and the
	// credentials are accepted.
	VerifyConnectivity(ctx context.Context) error

	CreateBook(ctx context.Context, name, description string) (int, error)
	// CreateChapter creates a chapter inside a book.
	CreateChapter(ctx context.Context, bookID int, name, description string) (int, error)
	// CreatePage creates a page inside a book; chapterID 0 means the page
	// sits directly in the book.
	CreatePage(ctx context.Context, bookID int, title, body string, chapterID int) (int, error)
	// UpdatePage replaces a page's markdown body.
	UpdatePage(ctx context.Context, pageID int, body string) error

	// UploadImage pushes an image file into the target's gallery,
	// associated with a page, and returns its public URL.
	UploadImage(ctx context.Context, path string, pageID int) (string, error)
	// UploadAttachment pushes a generic file as a page attachment and
	// returns the attachment id.
	UploadAttachment(ctx context.Context, path string, pageID int) (int, error)

	CreateShelf(ctx context.Context, name, description string) (int, error)
	// AttachBooks assigns all created books to a shelf in one batch.
	AttachBooks(ctx context.Context, shelfID int, bookIDs []int) error

	// BaseURL returns the target's base address, used to build attachment
	// links.
	BaseURL() string
}

// RemoteBook is a book listed by the target, used by diagnostics.
type RemoteBook struct {
	ID   int
	Name string
}

// DiagnosticClient is the extra surface the connectivity check command
// uses: listing, probing create permission, and counting entities.
type DiagnosticClient interface {
	ContentClient

	ListBooks(ctx context.Context) ([]RemoteBook, error)
	DeleteBook(ctx context.Context, id int) error
	CountPages(ctx context.Context) (int, error)
	CountChapters(ctx context.Context) (int, error)
}

// Reporter consumes the orchestrator's structured progress events.
type Reporter interface {
	Publish(e domain.Event)
}
