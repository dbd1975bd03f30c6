package console

import (
	"fmt"
	"io"
	"strings"

	"vaultstack/internal/application/commands"
	"vaultstack/internal/domain"
)

const rule = "============================================================"

// Summary writes the end-of-run report: counters first, then the
// ordered error list.
func Summary(out io.Writer, stats domain.TransferStats) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, titleStyle.Render("TRANSFER SUMMARY"))
	fmt.Fprintln(out, rule)

	fmt.Fprintf(out, "Pages: %d created, %d failed\n", stats.PagesCreated, stats.PagesFailed)
	if stats.ImagesUploaded+stats.ImagesFailed > 0 {
		fmt.Fprintf(out, "Images: %d uploaded, %d failed\n", stats.ImagesUploaded, stats.ImagesFailed)
	}
	if stats.AttachmentsUploaded+stats.AttachmentsFailed > 0 {
		fmt.Fprintf(out, "Attachments: %d uploaded, %d failed\n", stats.AttachmentsUploaded, stats.AttachmentsFailed)
	}
	fmt.Fprintf(out, "Books created: %d\n", stats.BooksCreated)

	if len(stats.Errors) > 0 {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("\nERRORS (%d):", len(stats.Errors))))
		for _, e := range stats.Errors {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("  • %s: %s - %s", e.Kind, e.Item, e.Message)))
		}
	} else {
		fmt.Fprintln(out, successStyle.Render("\n✓ Transfer completed without errors"))
	}
	fmt.Fprintln(out, rule)
}

// Preview writes the dry-run structure report.
func Preview(out io.Writer, result *commands.PreviewResult) {
	fmt.Fprintln(out, titleStyle.Render("=== TRANSFER PREVIEW ==="))
	for _, book := range result.Books {
		fmt.Fprintf(out, "Book: %s\n", book.DisplayName)
		for _, chapter := range book.Chapters {
			indent := "  "
			if chapter.Name != domain.RootBucket {
				fmt.Fprintf(out, "  Chapter: %s\n", chapter.DisplayName)
				indent = "    "
			}
			for _, page := range chapter.Pages {
				fmt.Fprintf(out, "%sPage: %s\n", indent, page.Title)
				for _, asset := range page.Assets {
					if asset.Exists {
						fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("%s  %s %s ✓", indent, asset.Kind, asset.Name)))
					} else {
						fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("%s  %s %s ✗ (not found)", indent, asset.Kind, asset.Name)))
					}
				}
			}
		}
	}

	fmt.Fprintln(out, "\n--- Summary ---")
	fmt.Fprintf(out, "  • 1 shelf: %q\n", result.ShelfName)
	fmt.Fprintf(out, "  • %d books\n", len(result.Books))
	fmt.Fprintf(out, "  • %d chapters\n", result.Chapters)
	fmt.Fprintf(out, "  • %d pages\n", result.Pages)
	if result.Images > 0 {
		fmt.Fprintf(out, "  • %d images to transfer\n", result.Images)
	}
	if result.Attachments > 0 {
		fmt.Fprintf(out, "  • %d attachments to transfer\n", result.Attachments)
	}
	fmt.Fprintln(out, mutedStyle.Render("\nThis is a preview. Run the transfer command to create content."))
}

// Check writes the connectivity diagnostic report.
func Check(out io.Writer, report *commands.CheckReport) {
	for i, step := range report.Steps {
		mark := successStyle.Render("✓")
		if !step.OK {
			mark = errorStyle.Render("✗")
		}
		fmt.Fprintf(out, "%d. %s %s", i+1, mark, step.Name)
		if step.Detail != "" {
			fmt.Fprintf(out, " - %s", step.Detail)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
	if report.Healthy {
		fmt.Fprintln(out, successStyle.Render("Connection OK. Configuration is ready for a transfer."))
	} else {
		fmt.Fprintln(out, errorStyle.Render("Connection check failed. Review the configuration before transferring."))
	}
}

// History writes the journal listing, most recent run first.
func History(out io.Writer, runs []domain.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No recorded runs."))
		return
	}
	for _, run := range runs {
		status := successStyle.Render("ok")
		if !run.Success {
			status = errorStyle.Render("failed")
		}
		fmt.Fprintf(out, "%s  %s  shelf=%q  pages=%d/%d  images=%d/%d  attachments=%d/%d  errors=%d\n",
			run.StartedAt.Format("2006-01-02 15:04"),
			status,
			run.ShelfName,
			run.Stats.PagesCreated, run.Stats.PagesCreated+run.Stats.PagesFailed,
			run.Stats.ImagesUploaded, run.Stats.ImagesUploaded+run.Stats.ImagesFailed,
			run.Stats.AttachmentsUploaded, run.Stats.AttachmentsUploaded+run.Stats.AttachmentsFailed,
			len(run.Stats.Errors),
		)
		if vault := strings.TrimSpace(run.VaultPath); vault != "" {
			fmt.Fprintln(out, mutedStyle.Render("  vault: "+vault))
		}
	}
}
