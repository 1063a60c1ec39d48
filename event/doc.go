// Package event provides the core observer-pattern primitive for evoke.
//
// An Event is a named notification channel: it keeps a collection of
// handlers (the observers) and broadcasts firings to every one of them.
// Delivery is fully synchronous - Fire invokes each handler in the
// calling goroutine and returns only when all of them have run, or when
// one of them fails.
//
// # Basic Usage
//
//	saved := event.New()
//
//	h := event.HandlerOf(func(sender any, args ...any) error {
//	    fmt.Printf("saved by %v\n", sender)
//	    return nil
//	})
//
//	saved.AddHandler(h)
//	if err := saved.Fire(doc); err != nil {
//	    log.Printf("handler failed: %v", err)
//	}
//	saved.RemoveHandler(h)
//
// Firing an Event with no handlers is a no-op, never an error.
//
// # Handler Identity
//
// The handler collection is a set: adding the same handler twice is
// idempotent, and removal requires the same handler value that was
// added. Identity is interface-value identity, so Handler
// implementations must be comparable - use pointer receivers, or wrap
// plain functions with HandlerOf, which allocates a fresh, distinct
// handler on every call. Keep the returned value if you intend to
// remove it later.
//
// # Bound and Unbound Views
//
// A BoundEvent pairs an Event with a fixed sender so that call sites
// never pass the sender themselves:
//
//	bound := saved.Bind(doc)
//	bound.Fire("args", "here") // handlers receive doc as sender
//
// A Slot declares an event at type scope while keeping each owner's
// handlers independent:
//
//	type Document struct{ ... }
//
//	var DocumentSaved = event.NewSlot[*Document]()
//
//	DocumentSaved.Of(doc).AddHandler(h) // scoped to doc only
//	DocumentSaved.Fire(doc)             // other owners' handlers never run
//
// # Failure Semantics
//
// A handler error aborts the firing: handlers not yet invoked do not
// run, and the error reaches the caller wrapped in a *HandlerError.
// There is no isolation between handlers and no aggregation of partial
// failures.
//
// # Thread Safety
//
// Collections guard their internal state, and handlers are invoked
// outside the lock, so handlers may add or remove handlers (including
// themselves) while a firing is in progress. Delivery itself is never
// deferred to another goroutine.
package event
