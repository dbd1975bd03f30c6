package domain

import (
	"path"
	"regexp"
	"strings"
)

// Kind classifies a reference as an inline image or a downloadable
// attachment. A reference is never both.
type Kind int

const (
	KindImage Kind = iota
	KindAttachment
)

func (k Kind) String() string {
	if k == KindImage {
		return "image"
	}
	return "attachment"
}

// Syntax records which link form a reference was written in. The
// resolution strategy differs between the two.
type Syntax int

const (
	// SyntaxBracket is a markdown link: ![alt](target) or [text](target).
	SyntaxBracket Syntax = iota
	// SyntaxWiki is a double-bracket link: [[file.ext]] or ![[file.ext]].
	SyntaxWiki
)

var imageExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "svg": true, "webp": true,
}

var attachmentExtensions = map[string]bool{
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
	"ppt": true, "pptx": true,
	"txt": true, "rtf": true, "odt": true, "ods": true, "odp": true,
	"zip": true, "rar": true, "7z": true, "tar": true, "gz": true,
	"mp3": true, "wav": true, "mp4": true, "avi": true, "mov": true, "mkv": true,
	"csv": true, "json": true, "xml": true, "yaml": true, "yml": true,
	"py": true, "js": true, "html": true, "css": true, "sql": true,
}

// IsImageExtension reports whether ext (without the dot) is on the image
// allow-list.
func IsImageExtension(ext string) bool {
	return imageExtensions[strings.ToLower(ext)]
}

// IsAttachmentExtension reports whether ext (without the dot) is on the
// attachment allow-list.
func IsAttachmentExtension(ext string) bool {
	return attachmentExtensions[strings.ToLower(ext)]
}

// IsExternal reports whether a link target points outside the vault.
// External targets are already reachable and must not be rewritten.
func IsExternal(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

var (
	bracketImageRe  = regexp.MustCompile(`(?i)!\[([^\]]*)\]\(([^)]+)\)`)
	wikiImageRe     = regexp.MustCompile(`(?i)!?\[\[([^\]]+\.(?:png|jpg|jpeg|gif|svg|webp))\]\]`)
	bracketAttachRe = regexp.MustCompile(`(?i)\[([^\]]*)\]\(([^)]+\.([a-zA-Z0-9]+))\)`)
	wikiAttachRe    = regexp.MustCompile(`(?i)!?\[\[([^\]]+\.([a-zA-Z0-9]+))\]\]`)
)

// Match is a reference candidate found in a document body: the verbatim
// matched span plus the raw target string still to be resolved on disk.
type Match struct {
	Span   string // exact matched text, later used for splicing
	Target string // path or bare filename inside the link
	Label  string // bracket label; empty for wiki syntax
	Kind   Kind
	Syntax Syntax
}

// ScanImages finds all local image references in a body, in both link
// syntaxes. External (http/https) targets are skipped.
func ScanImages(body string) []Match {
	var out []Match
	for _, m := range bracketImageRe.FindAllStringSubmatch(body, -1) {
		if IsExternal(m[2]) {
			continue
		}
		out = append(out, Match{
			Span: m[0], Target: m[2], Label: m[1],
			Kind: KindImage, Syntax: SyntaxBracket,
		})
	}
	for _, m := range wikiImageRe.FindAllStringSubmatch(body, -1) {
		out = append(out, Match{
			Span: m[0], Target: m[1],
			Kind: KindImage, Syntax: SyntaxWiki,
		})
	}
	return out
}

// ScanAttachments finds all local attachment references in a body.
// Bracket matches immediately preceded by '!' belong to image syntax and
// are skipped, so the two categories never overlap. Only targets with an
// extension from the attachment allow-list are reported.
func ScanAttachments(body string) []Match {
	var out []Match
	for _, idx := range bracketAttachRe.FindAllStringSubmatchIndex(body, -1) {
		if idx[0] > 0 && body[idx[0]-1] == '!' {
			continue
		}
		span := body[idx[0]:idx[1]]
		label := body[idx[2]:idx[3]]
		target := body[idx[4]:idx[5]]
		ext := body[idx[6]:idx[7]]
		if !IsAttachmentExtension(ext) || IsExternal(target) {
			continue
		}
		out = append(out, Match{
			Span: span, Target: target, Label: label,
			Kind: KindAttachment, Syntax: SyntaxBracket,
		})
	}
	for _, m := range wikiAttachRe.FindAllStringSubmatch(body, -1) {
		if !IsAttachmentExtension(m[2]) {
			continue
		}
		out = append(out, Match{
			Span: m[0], Target: m[1],
			Kind: KindAttachment, Syntax: SyntaxWiki,
		})
	}
	return out
}

// Reference is a Match that resolved to a real file. ReplacementURL is
// empty until the asset has been uploaded.
type Reference struct {
	Match
	Path           string // absolute path of the resolved file
	ReplacementURL string
}

// AltText returns the display text to carry into the rewritten link:
// the bracket label verbatim, or the filename stem for wiki syntax.
func (r Reference) AltText() string {
	if r.Syntax == SyntaxBracket {
		return r.Label
	}
	base := path.Base(r.Target)
	return strings.TrimSuffix(base, path.Ext(base))
}

// FileName returns the base name of the resolved file.
func (r Reference) FileName() string {
	return path.Base(strings.ReplaceAll(r.Path, "\\", "/"))
}

// Rendered builds the replacement span for an uploaded reference.
func (r Reference) Rendered() string {
	if r.Kind == KindImage {
		return "![" + r.AltText() + "](" + r.ReplacementURL + ")"
	}
	return "[" + r.AltText() + "](" + r.ReplacementURL + ")"
}
