package domain

import (
	"testing"
)

func TestScanImages_BracketSyntax(t *testing.T) {
	body := "Intro\n![diagram](assets/diagram.png)\ntext ![](img/photo.JPG) end"

	matches := ScanImages(body)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	if matches[0].Span != "![diagram](assets/diagram.png)" {
		t.Errorf("unexpected span: %q", matches[0].Span)
	}
	if matches[0].Target != "assets/diagram.png" {
		t.Errorf("unexpected target: %q", matches[0].Target)
	}
	if matches[0].Label != "diagram" {
		t.Errorf("unexpected label: %q", matches[0].Label)
	}
	if matches[0].Kind != KindImage || matches[0].Syntax != SyntaxBracket {
		t.Errorf("unexpected kind/syntax: %v/%v", matches[0].Kind, matches[0].Syntax)
	}

	// Empty alt text is still a valid image link
	if matches[1].Label != "" {
		t.Errorf("expected empty label, got %q", matches[1].Label)
	}
}

func TestScanImages_WikiSyntax(t *testing.T) {
	body := "![[screenshot.png]] and [[Photo.JPEG]]"

	matches := ScanImages(body)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	if matches[0].Span != "![[screenshot.png]]" {
		t.Errorf("unexpected span: %q", matches[0].Span)
	}
	if matches[0].Target != "screenshot.png" {
		t.Errorf("unexpected target: %q", matches[0].Target)
	}
	if matches[0].Syntax != SyntaxWiki {
		t.Errorf("expected wiki syntax")
	}
	if matches[1].Target != "Photo.JPEG" {
		t.Errorf("unexpected target: %q", matches[1].Target)
	}
}

func TestScanImages_SkipsExternalTargets(t *testing.T) {
	body := "![remote](https://example.com/pic.png) ![local](pic.png) ![insecure](http://example.com/x.gif)"

	matches := ScanImages(body)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Target != "pic.png" {
		t.Errorf("unexpected target: %q", matches[0].Target)
	}
}

func TestScanAttachments(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantTargets []string
	}{
		{
			name:        "bracket pdf",
			body:        "[manual](docs/manual.pdf)",
			wantTargets: []string{"docs/manual.pdf"},
		},
		{
			name:        "wiki attachment",
			body:        "see [[report.xlsx]]",
			wantTargets: []string{"report.xlsx"},
		},
		{
			name:        "embedded wiki attachment",
			body:        "![[audio.mp3]]",
			wantTargets: []string{"audio.mp3"},
		},
		{
			name:        "image link not reported as attachment",
			body:        "![pic](shot.png)",
			wantTargets: nil,
		},
		{
			name:        "markdown note link skipped",
			body:        "[other note](other-note.md)",
			wantTargets: nil,
		},
		{
			name:        "external target skipped",
			body:        "[spec](https://example.com/spec.pdf)",
			wantTargets: nil,
		},
		{
			name:        "extension match is case insensitive",
			body:        "[data](export.CSV)",
			wantTargets: []string{"export.CSV"},
		},
		{
			name:        "mixed body",
			body:        "![pic](a.png)\n[doc](b.pdf)\n[[c.zip]]\n[page](https://e.com/d.pdf)",
			wantTargets: []string{"b.pdf", "c.zip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := ScanAttachments(tt.body)
			if len(matches) != len(tt.wantTargets) {
				t.Fatalf("expected %d matches, got %d: %+v", len(tt.wantTargets), len(matches), matches)
			}
			for i, want := range tt.wantTargets {
				if matches[i].Target != want {
					t.Errorf("match %d: expected target %q, got %q", i, want, matches[i].Target)
				}
				if matches[i].Kind != KindAttachment {
					t.Errorf("match %d: expected attachment kind", i)
				}
			}
		})
	}
}

func TestScanAttachments_NoOverlapWithImages(t *testing.T) {
	// A body where every asset appears once; no span may be reported by
	// both scanners.
	body := "![shot](img/shot.png)\n[manual](docs/manual.pdf)\n![[inline.gif]]\n[[notes.txt]]"

	imageSpans := map[string]bool{}
	for _, m := range ScanImages(body) {
		imageSpans[m.Span] = true
	}
	for _, m := range ScanAttachments(body) {
		if imageSpans[m.Span] {
			t.Errorf("span %q reported as both image and attachment", m.Span)
		}
	}
}

func TestReference_AltText(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want string
	}{
		{
			name: "bracket label kept verbatim",
			ref:  Reference{Match: Match{Label: "My Diagram", Target: "a/b.png", Syntax: SyntaxBracket}},
			want: "My Diagram",
		},
		{
			name: "bracket empty label stays empty",
			ref:  Reference{Match: Match{Label: "", Target: "a/b.png", Syntax: SyntaxBracket}},
			want: "",
		},
		{
			name: "wiki uses filename stem",
			ref:  Reference{Match: Match{Target: "folder/picture.png", Syntax: SyntaxWiki}},
			want: "picture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.AltText(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReference_Rendered(t *testing.T) {
	img := Reference{
		Match:          Match{Label: "pic", Kind: KindImage, Syntax: SyntaxBracket},
		ReplacementURL: "https://bs.example.com/uploads/pic.png",
	}
	if got := img.Rendered(); got != "![pic](https://bs.example.com/uploads/pic.png)" {
		t.Errorf("unexpected image rendering: %q", got)
	}

	att := Reference{
		Match:          Match{Target: "manual.pdf", Kind: KindAttachment, Syntax: SyntaxWiki},
		ReplacementURL: "https://bs.example.com/attachments/7",
	}
	if got := att.Rendered(); got != "[manual](https://bs.example.com/attachments/7)" {
		t.Errorf("unexpected attachment rendering: %q", got)
	}
}

func TestExtensionClassification(t *testing.T) {
	if !IsImageExtension("PNG") {
		t.Error("PNG should be an image extension")
	}
	if IsImageExtension("pdf") {
		t.Error("pdf is not an image extension")
	}
	if !IsAttachmentExtension("pdf") {
		t.Error("pdf should be an attachment extension")
	}
	if IsAttachmentExtension("png") {
		t.Error("png must never be an attachment extension")
	}
	if IsAttachmentExtension("md") {
		t.Error("md is not an attachment extension")
	}
}
