package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"vaultstack/internal/application/commands"
	"vaultstack/internal/domain"
)

func TestReporter_PublishShapes(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Publish(domain.Event{Kind: domain.EventTransferStarted, Name: "/vault"})
	r.Publish(domain.Event{Kind: domain.EventBookCreated, Name: "Projects", Detail: "3"})
	r.Publish(domain.Event{Kind: domain.EventPageFailed, Name: "Plan", Err: errors.New("422")})

	out := buf.String()
	for _, want := range []string{
		"Starting transfer from /vault",
		"Book created: Projects (ID: 3)",
		"Page failed: Plan",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	stats := domain.TransferStats{
		PagesCreated:   3,
		PagesFailed:    1,
		ImagesUploaded: 2,
		BooksCreated:   1,
	}
	stats.AddError("page", "bad.md", "read failed")

	Summary(&buf, stats)
	out := buf.String()

	for _, want := range []string{
		"TRANSFER SUMMARY",
		"Pages: 3 created, 1 failed",
		"Images: 2 uploaded, 0 failed",
		"ERRORS (1):",
		"page: bad.md - read failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_NoErrors(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, domain.TransferStats{PagesCreated: 1})
	if !strings.Contains(buf.String(), "without errors") {
		t.Errorf("expected clean-run line:\n%s", buf.String())
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	result := &commands.PreviewResult{
		ShelfName: "Shelf",
		Books: []commands.BookPreview{
			{
				Name: "Projects", DisplayName: "Projects",
				Chapters: []commands.ChapterPreview{
					{
						Name: "Active", DisplayName: "Active",
						Pages: []commands.PagePreview{
							{
								Title: "Plan",
								Assets: []commands.AssetPreview{
									{Name: "pic.png", Kind: domain.KindImage, Exists: true},
									{Name: "gone.pdf", Kind: domain.KindAttachment, Exists: false},
								},
							},
						},
					},
				},
			},
		},
		Chapters: 1, Pages: 1, Images: 1, Attachments: 1,
	}

	Preview(&buf, result)
	out := buf.String()

	for _, want := range []string{
		"Book: Projects",
		"Chapter: Active",
		"Page: Plan",
		"not found",
		"1 chapters",
		"This is a preview",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	Check(&buf, &commands.CheckReport{
		Steps: []commands.CheckStep{
			{Name: "connection", OK: true, Detail: "https://bs.example.com"},
			{Name: "create permission", OK: false, Detail: "403"},
		},
		Healthy: false,
	})

	out := buf.String()
	if !strings.Contains(out, "1.") || !strings.Contains(out, "connection") {
		t.Errorf("check output missing numbered steps:\n%s", out)
	}
	if !strings.Contains(out, "failed") {
		t.Errorf("unhealthy report must say so:\n%s", out)
	}
}

func TestHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	History(&buf, nil)
	if !strings.Contains(buf.String(), "No recorded runs") {
		t.Errorf("unexpected empty-history output: %s", buf.String())
	}
}
