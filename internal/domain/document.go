package domain

import "strings"

// RootBucket is the sentinel book/chapter name for documents that sit
// directly under the vault root (or directly under their book's folder).
const RootBucket = "root"

// DocumentFile is a markdown document located during the vault walk.
// Immutable once discovered.
type DocumentFile struct {
	Path    string // absolute path
	RelPath string // path relative to the vault root, forward slashes
}

// Chapter groups the documents of one second-level folder. Name is the
// vault-relative remainder after the book segment ("root" for documents
// directly under the book folder).
type Chapter struct {
	Name  string
	Files []DocumentFile
}

// Book groups the chapters of one first-level folder.
type Book struct {
	Name     string
	Chapters []*Chapter
}

// Hierarchy maps the vault's nested folder tree onto the two-level
// book/chapter structure of the remote target. Books and chapters keep
// discovery order so reports are deterministic.
type Hierarchy struct {
	Books []*Book

	bookIndex map[string]*Book
}

// Add places a document into its (book, chapter) bucket, creating the
// bucket on first use.
func (h *Hierarchy) Add(book, chapter string, file DocumentFile) {
	if h.bookIndex == nil {
		h.bookIndex = make(map[string]*Book)
	}
	b, ok := h.bookIndex[book]
	if !ok {
		b = &Book{Name: book}
		h.bookIndex[book] = b
		h.Books = append(h.Books, b)
	}
	for _, c := range b.Chapters {
		if c.Name == chapter {
			c.Files = append(c.Files, file)
			return
		}
	}
	b.Chapters = append(b.Chapters, &Chapter{Name: chapter, Files: []DocumentFile{file}})
}

// Collapse folds every document into a single book with the given name
// and no chapters. Used when folder structure is not preserved.
func (h *Hierarchy) Collapse(bookName string) *Hierarchy {
	flat := &Hierarchy{}
	for _, b := range h.Books {
		for _, c := range b.Chapters {
			for _, f := range c.Files {
				flat.Add(bookName, RootBucket, f)
			}
		}
	}
	return flat
}

// DocumentCount returns the total number of documents in the hierarchy.
func (h *Hierarchy) DocumentCount() int {
	n := 0
	for _, b := range h.Books {
		for _, c := range b.Chapters {
			n += len(c.Files)
		}
	}
	return n
}

// BucketFor derives the (book, chapter) bucket for a vault-relative
// document path. Segments exclude the filename itself.
func BucketFor(relPath string) (book, chapter string) {
	parts := strings.Split(strings.Trim(relPath, "/"), "/")
	parts = parts[:len(parts)-1] // drop the filename
	switch len(parts) {
	case 0:
		return RootBucket, RootBucket
	case 1:
		return parts[0], RootBucket
	default:
		return parts[0], strings.Join(parts[1:], "/")
	}
}

// BookDisplayName returns the name shown on the remote target for a book
// bucket.
func BookDisplayName(name string) string {
	if name == RootBucket {
		return "Root Files"
	}
	return name
}

// ChapterDisplayName flattens the nested-folder chapter name for display.
func ChapterDisplayName(name string) string {
	return strings.ReplaceAll(name, "/", " - ")
}

// ParsedDocument is a DocumentFile read from disk: frontmatter stripped,
// references extracted and resolved.
type ParsedDocument struct {
	File        DocumentFile
	Title       string
	Body        string
	Metadata    map[string]any
	Images      []Reference
	Attachments []Reference
}
