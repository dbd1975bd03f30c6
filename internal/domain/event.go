package domain

// EventKind identifies one step of a transfer run as it happens.
type EventKind int

const (
	EventTransferStarted EventKind = iota
	EventConnectivityOK
	EventBookCreated
	EventBookFailed
	EventChapterCreated
	EventChapterFailed
	EventPageCreated
	EventPageFailed
	EventDocumentSkipped
	EventImageUploaded
	EventImageFailed
	EventAttachmentUploaded
	EventAttachmentFailed
	EventPageUpdated
	EventPageUpdateFailed
	EventShelfCreated
	EventShelfFailed
	EventBooksShelved
	EventShelvingFailed
)

// Event is a structured progress record emitted by the orchestrator.
// The core never writes console text; a presentation adapter renders
// these.
type Event struct {
	Kind   EventKind
	Name   string // entity display name or file name
	Detail string // location, URL, or count detail
	Err    error
}
