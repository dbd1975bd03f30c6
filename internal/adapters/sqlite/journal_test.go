package sqlite

import (
	"testing"
	"time"

	"vaultstack/internal/domain"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	j, err := Open("/vault")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_RecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	run := domain.RunRecord{
		StartedAt:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 8, 1, 10, 5, 0, 0, time.UTC),
		VaultPath:  "/vault",
		ShelfName:  "Shelf",
		Success:    true,
		Stats: domain.TransferStats{
			PagesCreated:        7,
			PagesFailed:         1,
			ImagesUploaded:      3,
			AttachmentsUploaded: 2,
			BooksCreated:        2,
			ChaptersCreated:     1,
			Errors: []domain.ErrorRecord{
				{Kind: "page", Item: "a.md", Message: "read failed"},
				{Kind: "image", Item: "b.png", Message: "413"},
			},
		},
	}
	if err := j.Record(run); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID == 0 {
		t.Error("expected assigned run id")
	}
	if !got.Success || got.ShelfName != "Shelf" || got.VaultPath != "/vault" {
		t.Errorf("unexpected run: %+v", got)
	}
	if !got.StartedAt.Equal(run.StartedAt) {
		t.Errorf("started at mangled: %v vs %v", got.StartedAt, run.StartedAt)
	}
	if got.Stats.PagesCreated != 7 || got.Stats.BooksCreated != 2 {
		t.Errorf("counters mangled: %+v", got.Stats)
	}
	if len(got.Stats.Errors) != 2 {
		t.Fatalf("expected 2 error records, got %d", len(got.Stats.Errors))
	}
	// Error order must survive the round trip
	if got.Stats.Errors[0].Item != "a.md" || got.Stats.Errors[1].Item != "b.png" {
		t.Errorf("error order lost: %+v", got.Stats.Errors)
	}
}

func TestJournal_RecentNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	for i, shelf := range []string{"first", "second", "third"} {
		err := j.Record(domain.RunRecord{
			StartedAt:  time.Now().Add(time.Duration(i) * time.Minute),
			FinishedAt: time.Now().Add(time.Duration(i)*time.Minute + 30*time.Second),
			VaultPath:  "/vault",
			ShelfName:  shelf,
			Success:    true,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(runs))
	}
	if runs[0].ShelfName != "third" || runs[1].ShelfName != "second" {
		t.Errorf("expected newest first, got %s, %s", runs[0].ShelfName, runs[1].ShelfName)
	}
}

func TestJournal_RecentEmpty(t *testing.T) {
	j := openTestJournal(t)

	runs, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestJournal_DatabasePerVault(t *testing.T) {
	if hashVaultPath("/vault/a") == hashVaultPath("/vault/b") {
		t.Error("different vaults must map to different database files")
	}
	if hashVaultPath("/vault/a") != hashVaultPath("/vault/a") {
		t.Error("hash must be stable")
	}
}
