package document

import "github.com/dshills/evoke/event"

// Forward returns an Observer that relays every change to e, firing it
// with the given sender and the Change as payload. Handler errors from
// the event are discarded: document delivery has no failure channel,
// so callers needing error handling should subscribe to the event's
// handler collection directly.
func Forward(sender any, e *event.Event) Observer {
	return func(change Change) {
		_ = e.Fire(sender, change)
	}
}
