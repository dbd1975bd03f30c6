package domain

import "time"

// ErrorRecord is one non-fatal failure collected during a transfer run.
type ErrorRecord struct {
	Kind    string // "page", "image", "attachment", "chapter", "book", "shelf"
	Item    string
	Message string
}

// TransferStats accumulates counters and errors for a single transfer
// pass. Created empty, mutated throughout the run, read once for the
// summary.
type TransferStats struct {
	PagesCreated        int
	PagesFailed         int
	ImagesUploaded      int
	ImagesFailed        int
	AttachmentsUploaded int
	AttachmentsFailed   int
	BooksCreated        int
	ChaptersCreated     int

	Errors []ErrorRecord
}

// AddError appends a structured error record, preserving order.
func (s *TransferStats) AddError(kind, item, message string) {
	s.Errors = append(s.Errors, ErrorRecord{Kind: kind, Item: item, Message: message})
}

// RunRecord is the journal entry written after a transfer run.
type RunRecord struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	VaultPath  string
	ShelfName  string
	Success    bool
	Stats      TransferStats
}
