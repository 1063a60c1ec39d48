package event

import "sync"

// AnySlot is the type-erased view of a Slot, for callers that hold
// slots of mixed owner types (the observable package's model registry).
type AnySlot interface {
	// BindAny returns a bound view for the owner, or ErrNotOwner if
	// owner is nil or not of the slot's owner type.
	BindAny(owner any) (*BoundEvent, error)

	// FireAny fires the owner's event with owner as sender, or returns
	// ErrNotOwner if owner is nil or not of the slot's owner type.
	FireAny(owner any, args ...any) error
}

// Slot declares an event at type scope while keeping each owner's
// handlers independent: handlers added through one owner's view never
// fire for another owner's notifications.
//
// Internally a Slot keeps a side-table from owner to that owner's
// Event, populated lazily on first access. The table pins owners until
// Drop is called for them.
type Slot[O comparable] struct {
	mu     sync.Mutex
	events map[O]*Event
}

// NewSlot creates a slot for owners of type O.
func NewSlot[O comparable]() *Slot[O] {
	return &Slot[O]{
		events: make(map[O]*Event),
	}
}

// Event returns the owner's event, creating it on first access.
// Repeated calls for the same owner return the same Event, so handlers
// added via one access are visible via another.
func (s *Slot[O]) Event(owner O) *Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[owner]
	if !ok {
		e = New()
		s.events[owner] = e
	}
	return e
}

// Of returns a view of the owner's event bound to that owner: firing
// it reports the owner as sender without the caller passing it.
func (s *Slot[O]) Of(owner O) *BoundEvent {
	return s.Event(owner).Bind(owner)
}

// Fire fires the owner's event with the owner as sender.
func (s *Slot[O]) Fire(owner O, args ...any) error {
	return s.Event(owner).Fire(owner, args...)
}

// Drop releases the owner's entry in the side-table, discarding its
// handlers. A later access for the same owner starts fresh.
func (s *Slot[O]) Drop(owner O) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.events, owner)
}

// Owners returns the number of owners with an entry in the side-table.
func (s *Slot[O]) Owners() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.events)
}

// BindAny implements AnySlot.
func (s *Slot[O]) BindAny(owner any) (*BoundEvent, error) {
	o, ok := owner.(O)
	if !ok {
		return nil, ErrNotOwner
	}
	return s.Of(o), nil
}

// FireAny implements AnySlot.
func (s *Slot[O]) FireAny(owner any, args ...any) error {
	o, ok := owner.(O)
	if !ok {
		return ErrNotOwner
	}
	return s.Fire(o, args...)
}
