package document

import (
	"testing"

	"github.com/dshills/evoke/event"
)

func TestForward(t *testing.T) {
	doc, err := New([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	changed := event.New()

	var sender any
	var payload []any
	calls := 0
	if err := changed.AddHandler(event.HandlerOf(func(s any, args ...any) error {
		calls++
		sender = s
		payload = args
		return nil
	})); err != nil {
		t.Fatalf("AddHandler() error = %v", err)
	}

	if _, err := doc.Subscribe(Forward(doc, changed)); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if err := doc.Set("a", 2); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if calls != 1 {
		t.Fatalf("handler invoked %d times, want 1", calls)
	}
	if sender != any(doc) {
		t.Errorf("sender = %v, want the document", sender)
	}
	if len(payload) != 1 {
		t.Fatalf("payload length = %d, want 1", len(payload))
	}
	change, ok := payload[0].(Change)
	if !ok {
		t.Fatalf("payload type = %T, want Change", payload[0])
	}
	if change.Path != "a" || change.NewValue != float64(2) {
		t.Errorf("change = %+v, want set a -> 2", change)
	}
}
