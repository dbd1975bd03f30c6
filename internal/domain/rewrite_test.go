package domain

import "testing"

func TestRewriteBody_SplicesUploadedReferences(t *testing.T) {
	body := "Before\n![diagram](assets/diagram.png)\nAfter"
	refs := []Reference{
		{
			Match:          Match{Span: "![diagram](assets/diagram.png)", Label: "diagram", Kind: KindImage, Syntax: SyntaxBracket},
			ReplacementURL: "https://bs.example.com/uploads/diagram.png",
		},
	}

	got := RewriteBody(body, refs)
	want := "Before\n![diagram](https://bs.example.com/uploads/diagram.png)\nAfter"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRewriteBody_LeavesUnuploadedReferences(t *testing.T) {
	body := "![one](a.png) and ![two](b.png)"
	refs := []Reference{
		{
			Match:          Match{Span: "![one](a.png)", Label: "one", Kind: KindImage, Syntax: SyntaxBracket},
			ReplacementURL: "https://bs.example.com/uploads/a.png",
		},
		{
			// upload failed, no URL
			Match: Match{Span: "![two](b.png)", Label: "two", Kind: KindImage, Syntax: SyntaxBracket},
		},
	}

	got := RewriteBody(body, refs)
	want := "![one](https://bs.example.com/uploads/a.png) and ![two](b.png)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRewriteBody_ReplacesEveryOccurrence(t *testing.T) {
	body := "![[pic.png]] twice ![[pic.png]]"
	refs := []Reference{
		{
			Match:          Match{Span: "![[pic.png]]", Target: "pic.png", Kind: KindImage, Syntax: SyntaxWiki},
			ReplacementURL: "https://bs.example.com/uploads/pic.png",
		},
	}

	got := RewriteBody(body, refs)
	want := "![pic](https://bs.example.com/uploads/pic.png) twice ![pic](https://bs.example.com/uploads/pic.png)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRewriteBody_SecondPassIsNoOp(t *testing.T) {
	body := "see [manual](docs/manual.pdf)"
	refs := []Reference{
		{
			Match:          Match{Span: "[manual](docs/manual.pdf)", Label: "manual", Kind: KindAttachment, Syntax: SyntaxBracket},
			ReplacementURL: "https://bs.example.com/attachments/3",
		},
	}

	once := RewriteBody(body, refs)
	twice := RewriteBody(once, refs)
	if once != twice {
		t.Errorf("rewrite is not idempotent: %q vs %q", once, twice)
	}
}

func TestRewriteBody_NoReferences(t *testing.T) {
	body := "plain text, no links"
	if got := RewriteBody(body, nil); got != body {
		t.Errorf("body changed without references: %q", got)
	}
}
