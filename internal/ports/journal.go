package ports

import "vaultstack/internal/domain"

// Journal persists transfer-run summaries for the history command. It is
// write-only during a run and never feeds back into orchestration.
type Journal interface {
	Record(run domain.RunRecord) error
	Recent(limit int) ([]domain.RunRecord, error)
	Close() error
}
