package ports

import "vaultstack/internal/domain"

// DocumentSource walks a vault and reads its documents. Hierarchy is a
// pure read of the directory tree; Read parses one document, extracts
// its metadata and resolves its asset references.
type DocumentSource interface {
	Root() string
	Hierarchy() (*domain.Hierarchy, error)
	Read(file domain.DocumentFile) (*domain.ParsedDocument, error)
}

// MetadataExtractor pulls the title and metadata out of a document's
// leading frontmatter block. Implementations differ in how strictly the
// block is parsed; both fall back to fallbackTitle when no title field
// is present.
type MetadataExtractor interface {
	Extract(content, fallbackTitle string) (title, body string, meta map[string]any)
}
