// Package property provides change-notifying accessors: getter/setter
// pairs that fire an event when a value actually changes.
//
// A Property does not own the value it manages - the value lives in
// the owning object, reached through the configured getter and setter.
// On a successful set the property reads the old value first, stores
// the new one, and fires its changed event only when the two differ
// under the configured equality, passing a Change payload carrying the
// property name and the old and new values.
//
//	type Counter struct{ n int }
//
//	count := property.New[*Counter, int]("count",
//	    property.WithGetter(func(c *Counter) int { return c.n }),
//	    property.WithSetter(func(c *Counter, v int) { c.n = v }),
//	)
//
//	c := &Counter{}
//	_ = count.Changed().Of(c).AddHandler(event.HandlerOf(onChange))
//
//	_ = count.Set(c, 1) // fires: old 0, new 1
//	_ = count.Set(c, 1) // same value, fires nothing
//	_ = count.Set(c, 2) // fires: old 1, new 2
//
// A property with no getter cannot detect changes (the old value is
// unknowable), so setting it stores the value and fires nothing.
// A property with no setter is read-only; a property with no getter is
// unreadable; a property with no deleter cannot be deleted. Each case
// surfaces as a sentinel error from errors.go.
//
// The changed event is a per-owner slot: handlers registered for one
// owner never fire for another owner's changes. AlsoNotify wires an
// additional shared slot, fired after the property's own changed event
// with the same payload - the observable package uses it for its
// type-wide "any property changed" broadcast.
package property
