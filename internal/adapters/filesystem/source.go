package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vaultstack/internal/domain"
	"vaultstack/internal/ports"
)

// Source implements ports.DocumentSource over a vault directory on disk.
type Source struct {
	root string
	meta ports.MetadataExtractor
}

// Ensure Source implements DocumentSource
var _ ports.DocumentSource = (*Source)(nil)

// NewSource opens a vault. The path must exist and be a directory;
// anything else fails fast.
func NewSource(root string, meta ports.MetadataExtractor) (*Source, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		root = filepath.Join(home, root[1:])
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid vault path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault path does not exist: %s", abs)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault path is not a directory: %s", abs)
	}

	return &Source{root: abs, meta: meta}, nil
}

// Root returns the absolute vault root.
func (s *Source) Root() string {
	return s.root
}

// Hierarchy walks the vault and buckets every markdown document into its
// (book, chapter) pair. Buckets keep discovery order; the walk itself is
// lexicographic by path, which also fixes the tie-break order for
// filename-only link resolution.
func (s *Source) Hierarchy() (*domain.Hierarchy, error) {
	h := &domain.Hierarchy{}
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		book, chapter := domain.BucketFor(rel)
		h.Add(book, chapter, domain.DocumentFile{Path: p, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault: %w", err)
	}
	return h, nil
}

// Read loads one document, strips its frontmatter and extracts asset
// references. References that cannot be resolved to a file are dropped.
func (s *Source) Read(file domain.DocumentFile) (*domain.ParsedDocument, error) {
	raw, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, &domain.ReadError{Path: file.Path, Cause: err}
	}

	stem := strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path))
	title, body, meta := s.meta.Extract(string(raw), stem)

	doc := &domain.ParsedDocument{
		File:     file,
		Title:    title,
		Body:     body,
		Metadata: meta,
	}
	for _, m := range domain.ScanImages(body) {
		if p, ok := s.Resolve(m, file.Path); ok {
			doc.Images = append(doc.Images, domain.Reference{Match: m, Path: p})
		}
	}
	for _, m := range domain.ScanAttachments(body) {
		if p, ok := s.Resolve(m, file.Path); ok {
			doc.Attachments = append(doc.Attachments, domain.Reference{Match: m, Path: p})
		}
	}
	return doc, nil
}

// Resolve maps a match's raw target onto an existing file. Bracket
// targets are tried relative to the referencing document first, then
// relative to the vault root. Wiki targets are bare filenames searched
// across the whole vault. Filesystem errors reduce to "not found".
func (s *Source) Resolve(m domain.Match, docPath string) (string, bool) {
	if m.Syntax == domain.SyntaxBracket {
		cand := filepath.Join(filepath.Dir(docPath), filepath.FromSlash(m.Target))
		if isFile(cand) {
			return cand, true
		}
		cand = filepath.Join(s.root, filepath.FromSlash(m.Target))
		if isFile(cand) {
			return cand, true
		}
		return "", false
	}
	return s.findByName(m.Target)
}

// findByName searches the vault for a file matching the target name,
// visiting paths in lexicographic order; the first match wins. A target
// carrying directory components matches on its full relative suffix.
func (s *Source) findByName(name string) (string, bool) {
	target := path.Clean(filepath.ToSlash(name))
	base := path.Base(target)

	var found string
	filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || d.Name() != base {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == target || strings.HasSuffix(rel, "/"+target) {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
