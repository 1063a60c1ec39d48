package event

// BoundEvent is a view of an Event with a fixed sender: firing it
// never takes an explicit sender argument. The sender is borrowed and
// the event is shared, so a BoundEvent is cheap to construct on each
// access and need not be retained - every view over the same Event
// observes the same handler collection.
type BoundEvent struct {
	sender any
	event  *Event
}

// Bind pairs a sender with an event.
func Bind(sender any, e *Event) *BoundEvent {
	return &BoundEvent{sender: sender, event: e}
}

// Sender returns the fixed sender.
func (b *BoundEvent) Sender() any {
	return b.sender
}

// Event returns the wrapped event.
func (b *BoundEvent) Event() *Event {
	return b.event
}

// AddHandler registers a handler with the wrapped event.
func (b *BoundEvent) AddHandler(h Handler) error {
	return b.event.AddHandler(h)
}

// RemoveHandler removes a handler from the wrapped event.
func (b *BoundEvent) RemoveHandler(h Handler) error {
	return b.event.RemoveHandler(h)
}

// HasHandler reports whether the handler is registered with the
// wrapped event.
func (b *BoundEvent) HasHandler(h Handler) bool {
	return b.event.HasHandler(h)
}

// HandlerCount returns the wrapped event's handler count.
func (b *BoundEvent) HandlerCount() int {
	return b.event.HandlerCount()
}

// Fire fires the wrapped event with the fixed sender as the first
// argument.
func (b *BoundEvent) Fire(args ...any) error {
	return b.event.Fire(b.sender, args...)
}

// Disconnect removes all handlers from the wrapped event.
func (b *BoundEvent) Disconnect() {
	b.event.Disconnect()
}
