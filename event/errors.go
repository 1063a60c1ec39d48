package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event core.
var (
	// ErrHandlerNotFound is returned when removing a handler that was never added.
	ErrHandlerNotFound = errors.New("handler not found")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNotOwner is returned when an unbound slot is invoked with a sender
	// that is not an owner of the declaring type, or with no sender at all.
	ErrNotOwner = errors.New("sender is not an owner of this slot")
)

// HandlerError wraps an error returned by a handler during a firing.
// The firing aborts at the failing handler; handlers not yet invoked
// do not run.
type HandlerError struct {
	// Handler is the handler that failed.
	Handler Handler

	// Sender is the sender the event was fired with.
	Sender any

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %T failed for sender %v: %v", e.Handler, e.Sender, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
