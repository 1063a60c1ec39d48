package event

import "sync"

// Event is a notification channel. It owns exactly one
// HandlerCollection, created lazily on first use, and broadcasts
// firings to every registered handler synchronously.
//
// The zero value is ready to use.
type Event struct {
	mu       sync.Mutex
	handlers *HandlerCollection
}

// New creates an Event with an empty handler set.
func New() *Event {
	return &Event{}
}

// Handlers returns the event's handler collection, creating it on
// first access. The same collection is returned for the life of the
// Event; Disconnect empties it but does not replace it.
func (e *Event) Handlers() *HandlerCollection {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers == nil {
		e.handlers = NewHandlerCollection()
	}
	return e.handlers
}

// AddHandler registers a handler (observer) with this event.
func (e *Event) AddHandler(h Handler) error {
	return e.Handlers().Add(h)
}

// RemoveHandler removes a handler. Removing a handler that was never
// added returns ErrHandlerNotFound.
func (e *Event) RemoveHandler(h Handler) error {
	return e.Handlers().Remove(h)
}

// HasHandler reports whether the handler is registered.
func (e *Event) HasHandler(h Handler) bool {
	return e.Handlers().Contains(h)
}

// HandlerCount returns the number of distinct registered handlers.
func (e *Event) HandlerCount() int {
	return e.Handlers().Count()
}

// Fire broadcasts to every registered handler with sender as the first
// argument. Firing with zero handlers is a no-op. A handler error
// aborts the firing and is returned wrapped in a *HandlerError.
func (e *Event) Fire(sender any, args ...any) error {
	return e.Handlers().Invoke(sender, args...)
}

// Disconnect removes all handlers without destroying the event.
func (e *Event) Disconnect() {
	e.Handlers().Clear()
}

// Bind returns a view of this event with a fixed sender. The view
// shares this event's handler collection.
func (e *Event) Bind(sender any) *BoundEvent {
	return Bind(sender, e)
}
