package commands

import (
	"context"
	"errors"
	"testing"

	"vaultstack/internal/ports"
)

// fakeDiagClient extends the fake content client with the diagnostic
// surface.
type fakeDiagClient struct {
	*fakeClient

	listErr      error
	deleteErr    error
	pagesErr     error
	chaptersErr  error
	deletedBooks []int
}

func newFakeDiagClient() *fakeDiagClient {
	return &fakeDiagClient{fakeClient: newFakeClient()}
}

func (f *fakeDiagClient) ListBooks(ctx context.Context) ([]ports.RemoteBook, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []ports.RemoteBook{{ID: 1, Name: "Existing"}}, nil
}

func (f *fakeDiagClient) DeleteBook(ctx context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedBooks = append(f.deletedBooks, id)
	return nil
}

func (f *fakeDiagClient) CountPages(ctx context.Context) (int, error) {
	if f.pagesErr != nil {
		return 0, f.pagesErr
	}
	return 12, nil
}

func (f *fakeDiagClient) CountChapters(ctx context.Context) (int, error) {
	if f.chaptersErr != nil {
		return 0, f.chaptersErr
	}
	return 4, nil
}

var _ ports.DiagnosticClient = (*fakeDiagClient)(nil)

func TestCheckCommand_AllProbesPass(t *testing.T) {
	client := newFakeDiagClient()
	report, err := NewCheckCommand(client).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !report.Healthy {
		t.Error("expected healthy report")
	}
	if len(report.Steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(report.Steps))
	}
	for _, step := range report.Steps {
		if !step.OK {
			t.Errorf("step %q failed: %s", step.Name, step.Detail)
		}
	}
	// The probe book must be cleaned up
	if len(client.deletedBooks) != 1 {
		t.Errorf("expected probe book deletion, got %v", client.deletedBooks)
	}
}

func TestCheckCommand_ConnectionFailureStopsEarly(t *testing.T) {
	client := newFakeDiagClient()
	client.connectivityErr = errors.New("refused")

	report, err := NewCheckCommand(client).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if report.Healthy {
		t.Error("expected unhealthy report")
	}
	if len(report.Steps) != 1 {
		t.Errorf("no further probes after a failed connection, got %d steps", len(report.Steps))
	}
	if len(client.createdBooks) != 0 {
		t.Error("probe book must not be created without a connection")
	}
}

func TestCheckCommand_CreateDenialIsUnhealthy(t *testing.T) {
	client := newFakeDiagClient()
	client.createBookErr = errors.New("403")

	report, err := NewCheckCommand(client).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if report.Healthy {
		t.Error("denied create permission must mark the report unhealthy")
	}
}

func TestCheckCommand_UndeletedProbeBookWarns(t *testing.T) {
	client := newFakeDiagClient()
	client.deleteErr = errors.New("405")

	report, err := NewCheckCommand(client).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// Still healthy, but the step carries a cleanup warning
	if !report.Healthy {
		t.Error("an undeleted probe book is a warning, not a failure")
	}
	found := false
	for _, step := range report.Steps {
		if step.Name == "create permission" && step.OK && step.Detail != "probe book created and deleted" {
			found = true
		}
	}
	if !found {
		t.Error("expected cleanup warning in the create permission step")
	}
}

func TestCheckCommand_InformationalProbeFailures(t *testing.T) {
	client := newFakeDiagClient()
	client.listErr = errors.New("500")
	client.pagesErr = errors.New("500")
	client.chaptersErr = errors.New("500")

	report, err := NewCheckCommand(client).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !report.Healthy {
		t.Error("informational probe failures must not mark the report unhealthy")
	}
}

func TestCheckCommand_RequiresClient(t *testing.T) {
	if _, err := NewCheckCommand(nil).Execute(context.Background()); err == nil {
		t.Error("expected validation error without a client")
	}
}
