package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"vaultstack/internal/domain"
	"vaultstack/internal/ports"
)

// Journal implements ports.Journal using SQLite. Each vault gets its own
// database file under the XDG data dir, keyed by a hash of the vault
// path.
type Journal struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure Journal implements ports.Journal
var _ ports.Journal = (*Journal)(nil)

// Open initializes the journal for the given vault path.
func Open(vaultPath string) (*Journal, error) {
	j := &Journal{
		vaultPath: vaultPath,
		dbPath:    databasePath(vaultPath),
	}

	if err := os.MkdirAll(filepath.Dir(j.dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", j.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	j.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL,
			vault_path TEXT NOT NULL,
			shelf_name TEXT NOT NULL,
			success INTEGER NOT NULL,
			pages_created INTEGER NOT NULL,
			pages_failed INTEGER NOT NULL,
			images_uploaded INTEGER NOT NULL,
			images_failed INTEGER NOT NULL,
			attachments_uploaded INTEGER NOT NULL,
			attachments_failed INTEGER NOT NULL,
			books_created INTEGER NOT NULL,
			chapters_created INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS run_errors (
			run_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			kind TEXT NOT NULL,
			item TEXT NOT NULL,
			message TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		);
		CREATE INDEX IF NOT EXISTS idx_run_errors_run ON run_errors(run_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup journal database: %w", err)
	}

	return j, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record writes one run's summary and its error records atomically.
func (j *Journal) Record(run domain.RunRecord) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (
			started_at, finished_at, vault_path, shelf_name, success,
			pages_created, pages_failed, images_uploaded, images_failed,
			attachments_uploaded, attachments_failed, books_created, chapters_created
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.StartedAt.Unix(), run.FinishedAt.Unix(), run.VaultPath, run.ShelfName, boolToInt(run.Success),
		run.Stats.PagesCreated, run.Stats.PagesFailed, run.Stats.ImagesUploaded, run.Stats.ImagesFailed,
		run.Stats.AttachmentsUploaded, run.Stats.AttachmentsFailed, run.Stats.BooksCreated, run.Stats.ChaptersCreated,
	)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, rec := range run.Stats.Errors {
		if _, err := tx.Exec(`
			INSERT INTO run_errors (run_id, position, kind, item, message)
			VALUES (?, ?, ?, ?, ?)
		`, runID, i, rec.Kind, rec.Item, rec.Message); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Recent returns up to limit runs, most recent first, with their error
// records attached.
func (j *Journal) Recent(limit int) ([]domain.RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, started_at, finished_at, vault_path, shelf_name, success,
			pages_created, pages_failed, images_uploaded, images_failed,
			attachments_uploaded, attachments_failed, books_created, chapters_created
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		var run domain.RunRecord
		var started, finished int64
		var success int
		if err := rows.Scan(
			&run.ID, &started, &finished, &run.VaultPath, &run.ShelfName, &success,
			&run.Stats.PagesCreated, &run.Stats.PagesFailed,
			&run.Stats.ImagesUploaded, &run.Stats.ImagesFailed,
			&run.Stats.AttachmentsUploaded, &run.Stats.AttachmentsFailed,
			&run.Stats.BooksCreated, &run.Stats.ChaptersCreated,
		); err != nil {
			return nil, err
		}
		run.StartedAt = unixTime(started)
		run.FinishedAt = unixTime(finished)
		run.Success = success != 0
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		errs, err := j.runErrors(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Stats.Errors = errs
	}
	return runs, nil
}

func (j *Journal) runErrors(runID int64) ([]domain.ErrorRecord, error) {
	rows, err := j.db.Query(`
		SELECT kind, item, message FROM run_errors
		WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ErrorRecord
	for rows.Next() {
		var rec domain.ErrorRecord
		if err := rows.Scan(&rec.Kind, &rec.Item, &rec.Message); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// databasePath returns the path for the SQLite database
func databasePath(vaultPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	hash := hashVaultPath(vaultPath)
	return filepath.Join(dataHome, "vaultstack", hash+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8])
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
