package event

import "sync"

// Handler is the observer side of an event. Implementations must be
// comparable (use pointer receivers); the collection keys its set by
// interface-value identity.
type Handler interface {
	// Handle is invoked with the sender reported as the origin of the
	// notification, followed by any payload the firer supplied.
	Handle(sender any, args ...any) error
}

// funcHandler adapts a plain function to a Handler. It is always held
// by pointer so every wrap is a distinct, comparable handler.
type funcHandler struct {
	fn func(sender any, args ...any) error
}

// Handle implements the Handler interface.
func (h *funcHandler) Handle(sender any, args ...any) error {
	return h.fn(sender, args...)
}

// HandlerOf wraps a function as a Handler. Each call returns a new
// distinct handler; keep the returned value to remove it later.
func HandlerOf(fn func(sender any, args ...any) error) Handler {
	return &funcHandler{fn: fn}
}

// HandlerCollection is an unordered set of handlers. It is safe for
// concurrent use; handlers are invoked outside the lock.
type HandlerCollection struct {
	mu       sync.RWMutex
	handlers map[Handler]struct{}
}

// NewHandlerCollection creates an empty handler collection.
func NewHandlerCollection() *HandlerCollection {
	return &HandlerCollection{
		handlers: make(map[Handler]struct{}),
	}
}

// Add inserts a handler if absent. Adding an already-present handler is
// idempotent: it is never invoked twice for one firing.
func (c *HandlerCollection) Add(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers[h] = struct{}{}
	return nil
}

// Remove removes a handler. Removing a handler that was never added
// returns ErrHandlerNotFound.
func (c *HandlerCollection) Remove(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.handlers[h]; !ok {
		return ErrHandlerNotFound
	}
	delete(c.handlers, h)
	return nil
}

// Contains reports whether the handler is registered.
func (c *HandlerCollection) Contains(h Handler) bool {
	if h == nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.handlers[h]
	return ok
}

// Count returns the number of distinct handlers.
func (c *HandlerCollection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.handlers)
}

// Clear removes all handlers.
func (c *HandlerCollection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers = make(map[Handler]struct{})
}

// Invoke calls every registered handler with (sender, args...).
// Invocation order is unspecified. A handler error aborts the firing:
// remaining handlers do not run and the error is returned wrapped in a
// *HandlerError. Invoking with zero handlers is a no-op.
func (c *HandlerCollection) Invoke(sender any, args ...any) error {
	c.mu.RLock()

	// Snapshot so handlers may mutate the collection mid-firing.
	// Mutations are not observed by the firing already in progress.
	snapshot := make([]Handler, 0, len(c.handlers))
	for h := range c.handlers {
		snapshot = append(snapshot, h)
	}

	c.mu.RUnlock()

	for _, h := range snapshot {
		if err := h.Handle(sender, args...); err != nil {
			return &HandlerError{Handler: h, Sender: sender, Err: err}
		}
	}
	return nil
}
