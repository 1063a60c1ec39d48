package document

import "errors"

// Sentinel errors for document access.
var (
	// ErrInvalidJSON is returned when a document or replacement is not
	// valid JSON.
	ErrInvalidJSON = errors.New("invalid json document")

	// ErrPathNotFound is returned when deleting a path that does not
	// exist in the document.
	ErrPathNotFound = errors.New("path not found")

	// ErrNilObserver is returned when subscribing a nil observer.
	ErrNilObserver = errors.New("observer cannot be nil")
)
