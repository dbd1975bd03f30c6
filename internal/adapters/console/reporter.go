// Package console renders the orchestrator's structured events and
// summaries as styled terminal output. It is the only place transfer
// progress is turned into text.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"vaultstack/internal/domain"
	"vaultstack/internal/ports"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")) // Red
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")) // Amber
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")) // Gray
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// Reporter implements ports.Reporter on a terminal writer.
type Reporter struct {
	out io.Writer
}

// Ensure Reporter implements ports.Reporter
var _ ports.Reporter = (*Reporter)(nil)

// NewReporter creates a reporter; a nil writer defaults to stdout.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out}
}

// Publish renders one transfer event as an indented progress line.
func (r *Reporter) Publish(e domain.Event) {
	switch e.Kind {
	case domain.EventTransferStarted:
		fmt.Fprintf(r.out, "Starting transfer from %s\n", e.Name)
	case domain.EventConnectivityOK:
		fmt.Fprintln(r.out, successStyle.Render("Connected to "+e.Detail))
	case domain.EventBookCreated:
		fmt.Fprintf(r.out, "Book created: %s (ID: %s)\n", e.Name, e.Detail)
	case domain.EventBookFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("✗ Book failed: %s - %v", e.Name, e.Err)))
	case domain.EventChapterCreated:
		fmt.Fprintf(r.out, "  Chapter created: %s (ID: %s)\n", e.Name, e.Detail)
	case domain.EventChapterFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("  ✗ Chapter failed: %s - %v", e.Name, e.Err)))
	case domain.EventPageCreated:
		fmt.Fprintln(r.out, successStyle.Render(fmt.Sprintf("    ✓ Transferred: %s → %s", e.Name, e.Detail)))
	case domain.EventPageFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("    ✗ Page failed: %s - %v", e.Name, e.Err)))
	case domain.EventDocumentSkipped:
		fmt.Fprintln(r.out, warnStyle.Render(fmt.Sprintf("    ! Skipped %s: %v", e.Name, e.Err)))
	case domain.EventImageUploaded:
		fmt.Fprintln(r.out, successStyle.Render(fmt.Sprintf("      ✓ Image uploaded: %s → %s", e.Name, e.Detail)))
	case domain.EventImageFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("      ✗ Image failed: %s - %v", e.Name, e.Err)))
	case domain.EventAttachmentUploaded:
		fmt.Fprintln(r.out, successStyle.Render(fmt.Sprintf("      ✓ Attachment uploaded: %s → %s", e.Name, e.Detail)))
	case domain.EventAttachmentFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("      ✗ Attachment failed: %s - %v", e.Name, e.Err)))
	case domain.EventPageUpdated:
		fmt.Fprintf(r.out, "      page body updated: %s\n", e.Name)
	case domain.EventPageUpdateFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("      ✗ Page update failed: %s - %v", e.Name, e.Err)))
	case domain.EventShelfCreated:
		fmt.Fprintf(r.out, "Shelf created: %s (ID: %s)\n", e.Name, e.Detail)
	case domain.EventShelfFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("✗ Shelf failed: %s - %v", e.Name, e.Err)))
	case domain.EventBooksShelved:
		fmt.Fprintln(r.out, successStyle.Render(fmt.Sprintf("✓ %s books added to shelf %s", e.Detail, e.Name)))
	case domain.EventShelvingFailed:
		fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf("✗ Could not add books to shelf: %v", e.Err)))
	}
}
