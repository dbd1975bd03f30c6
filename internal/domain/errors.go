package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure categories of a transfer run.
// Connectivity failures are fatal; every other category is scoped to the
// entity it names and never stops the run.
var (
	ErrConnectivity = errors.New("connectivity check failed")
	ErrCreation     = errors.New("creation failed")
	ErrUpload       = errors.New("upload failed")
	ErrUpdate       = errors.New("update failed")
	ErrRead         = errors.New("read failed")
)

// ConnectivityError halts a transfer before any creation call is made.
type ConnectivityError struct {
	URL   string
	Cause error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot reach %s: %v", e.URL, e.Cause)
}

func (e *ConnectivityError) Is(target error) bool {
	return target == ErrConnectivity
}

func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// CreationError is a failed create call for a book, chapter, page or
// shelf. It skips the affected sub-tree and is recorded.
type CreationError struct {
	Entity string // "book", "chapter", "page", "shelf"
	Name   string
	Cause  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("creating %s %q: %v", e.Entity, e.Name, e.Cause)
}

func (e *CreationError) Is(target error) bool {
	return target == ErrCreation
}

func (e *CreationError) Unwrap() error {
	return e.Cause
}

// UploadError is a failed asset upload; scoped to one reference, the
// original span stays in the body.
type UploadError struct {
	Kind  Kind
	Name  string
	Cause error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %s %q: %v", e.Kind, e.Name, e.Cause)
}

func (e *UploadError) Is(target error) bool {
	return target == ErrUpload
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

// UpdateError is a failed page-body update after uploads; the created
// page stays as-is.
type UpdateError struct {
	PageID int
	Cause  error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("updating page %d: %v", e.PageID, e.Cause)
}

func (e *UpdateError) Is(target error) bool {
	return target == ErrUpdate
}

func (e *UpdateError) Unwrap() error {
	return e.Cause
}

// ReadError is a document that could not be read from disk; the document
// is skipped and the failure recorded.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
