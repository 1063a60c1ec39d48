package property

import (
	"github.com/dshills/evoke/event"
)

// Getter reads the property's value from an owner.
type Getter[O comparable, T any] func(owner O) T

// Setter stores a value on an owner.
type Setter[O comparable, T any] func(owner O, value T)

// Deleter removes the property's value from an owner.
type Deleter[O comparable] func(owner O)

// Change is the payload delivered when a property's value changes.
type Change struct {
	// Property is the name of the property that changed.
	Property string

	// OldValue is the value before the set.
	OldValue any

	// NewValue is the value that was stored.
	NewValue any
}

// Property is a change-notifying accessor for values of type T owned
// by objects of type O. The value itself lives in the owner; the
// property holds only the accessor functions and the change events.
type Property[O comparable, T any] struct {
	name      string
	get       Getter[O, T]
	set       Setter[O, T]
	del       Deleter[O]
	eq        Equality[T]
	changed   *event.Slot[O]
	broadcast *event.Slot[O]
}

// New creates a property with the given name, configured by options.
// The name identifies the property in Change payloads and in the
// observable package's model registry.
func New[O comparable, T any](name string, opts ...Option[O, T]) *Property[O, T] {
	p := &Property[O, T]{
		name:    name,
		eq:      DeepEqual[T](),
		changed: event.NewSlot[O](),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the property name.
func (p *Property[O, T]) Name() string {
	return p.name
}

// CanRead reports whether a getter is configured.
func (p *Property[O, T]) CanRead() bool {
	return p.get != nil
}

// CanWrite reports whether a setter is configured.
func (p *Property[O, T]) CanWrite() bool {
	return p.set != nil
}

// CanDelete reports whether a deleter is configured.
func (p *Property[O, T]) CanDelete() bool {
	return p.del != nil
}

// Changed returns the property's value-changed slot. Handlers register
// per owner through it; firings carry a Change payload.
func (p *Property[O, T]) Changed() *event.Slot[O] {
	return p.changed
}

// AlsoNotify wires a shared slot that fires after the property's own
// changed event with the same payload. The observable package uses it
// for the type-wide "any property changed" broadcast. A nil slot
// unwires it.
func (p *Property[O, T]) AlsoNotify(s *event.Slot[O]) {
	p.broadcast = s
}

// Get returns the owner's current value, or ErrUnreadable if no getter
// is configured.
func (p *Property[O, T]) Get(owner O) (T, error) {
	if p.get == nil {
		var zero T
		return zero, ErrUnreadable
	}
	return p.get(owner), nil
}

// Set stores value on the owner. With no setter configured it returns
// ErrReadOnly. With a getter configured the old value is read first;
// if old and new differ under the property's equality, the changed
// event fires (and the shared slot, when wired) with the old value in
// the payload. With no getter the value is stored silently - the old
// value is unknowable, so no change can be detected.
//
// The value is already stored by the time the events fire, so a
// handler error propagates out of Set without undoing the write.
func (p *Property[O, T]) Set(owner O, value T) error {
	if p.set == nil {
		return ErrReadOnly
	}

	if p.get == nil {
		p.set(owner, value)
		return nil
	}

	old := p.get(owner)
	p.set(owner, value)

	if p.eq(old, value) {
		return nil
	}

	change := Change{Property: p.name, OldValue: old, NewValue: value}
	if err := p.changed.Fire(owner, change); err != nil {
		return err
	}
	if p.broadcast != nil {
		return p.broadcast.Fire(owner, change)
	}
	return nil
}

// Delete removes the owner's value via the deleter, or returns
// ErrCannotDelete if none is configured.
func (p *Property[O, T]) Delete(owner O) error {
	if p.del == nil {
		return ErrCannotDelete
	}
	p.del(owner)
	return nil
}
