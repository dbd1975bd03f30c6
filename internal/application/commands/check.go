package commands

import (
	"context"
	"fmt"

	"vaultstack/internal/application"
	"vaultstack/internal/ports"
)

// CheckStep is one diagnostic probe and its outcome.
type CheckStep struct {
	Name   string
	OK     bool
	Detail string
}

// CheckReport is the ordered result of a connectivity check.
type CheckReport struct {
	Steps   []CheckStep
	Healthy bool
}

// CheckCommand runs the verbose connectivity diagnostics: basic reach,
// book listing, a create-permission probe (a throwaway book that is
// deleted again), and page/chapter API access.
type CheckCommand struct {
	client ports.DiagnosticClient
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(client ports.DiagnosticClient) *CheckCommand {
	return &CheckCommand{client: client}
}

// Validate checks the command has everything it needs.
func (c *CheckCommand) Validate() error {
	if c.client == nil {
		return &application.ValidationError{Field: "client", Message: "diagnostic client is required"}
	}
	return nil
}

const probeBookName = "TEST_CONNECTION_BOOK_DELETE_ME"

// Execute runs all probes in order. A failed basic connection or a
// denied create permission marks the report unhealthy; the page and
// chapter probes are informational.
func (c *CheckCommand) Execute(ctx context.Context) (*CheckReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report := &CheckReport{Healthy: true}
	add := func(name string, ok bool, detail string) {
		report.Steps = append(report.Steps, CheckStep{Name: name, OK: ok, Detail: detail})
	}

	if err := c.client.VerifyConnectivity(ctx); err != nil {
		add("connection", false, err.Error())
		report.Healthy = false
		return report, nil
	}
	add("connection", true, c.client.BaseURL())

	books, err := c.client.ListBooks(ctx)
	if err != nil {
		add("list books", false, err.Error())
	} else {
		add("list books", true, fmt.Sprintf("%d existing books", len(books)))
	}

	probeID, err := c.client.CreateBook(ctx, probeBookName, "Probe book - safe to delete")
	if err != nil {
		add("create permission", false, err.Error())
		report.Healthy = false
	} else if err := c.client.DeleteBook(ctx, probeID); err != nil {
		add("create permission", true, fmt.Sprintf("probe book %d created but not deleted - remove it manually", probeID))
	} else {
		add("create permission", true, "probe book created and deleted")
	}

	if n, err := c.client.CountPages(ctx); err != nil {
		add("pages API", false, err.Error())
	} else {
		add("pages API", true, fmt.Sprintf("%d existing pages", n))
	}

	if n, err := c.client.CountChapters(ctx); err != nil {
		add("chapters API", false, err.Error())
	} else {
		add("chapters API", true, fmt.Sprintf("%d existing chapters", n))
	}

	return report, nil
}
