package event

import (
	"errors"
	"testing"
)

func TestEvent_Interface(t *testing.T) {
	e := New()
	obs := &recorder{}

	if err := e.AddHandler(obs); err != nil {
		t.Fatalf("AddHandler() error = %v", err)
	}
	if !e.HasHandler(obs) {
		t.Error("expected HasHandler to be true after add")
	}
	if err := e.Fire(t); err != nil {
		t.Fatalf("Fire() error = %v", err)
	}
	if err := e.RemoveHandler(obs); err != nil {
		t.Fatalf("RemoveHandler() error = %v", err)
	}
	if e.HasHandler(obs) {
		t.Error("expected HasHandler to be false after remove")
	}
}

func TestEvent_FireNoHandlers(t *testing.T) {
	e := New()

	if err := e.Fire("sender"); err != nil {
		t.Errorf("Fire() with zero handlers error = %v, want nil", err)
	}
}

func TestEvent_Fire(t *testing.T) {
	e := New()
	observers := []*recorder{{}, {}, {}}
	sender := "subject"

	if err := e.Fire(sender); err != nil {
		t.Fatalf("Fire() error = %v", err)
	}
	for i, obs := range observers {
		if obs.calls != 0 {
			t.Errorf("observers[%d] invoked %d times before add, want 0", i, obs.calls)
		}
	}

	wantCalls := [][]int{
		{1, 0, 0}, // after adding observers[0]
		{2, 1, 0}, // after adding observers[1]
	}

	for step, want := range wantCalls {
		if err := e.AddHandler(observers[step]); err != nil {
			t.Fatalf("AddHandler() error = %v", err)
		}
		if err := e.Fire(sender); err != nil {
			t.Fatalf("Fire() error = %v", err)
		}
		for i, obs := range observers {
			if obs.calls != want[i] {
				t.Errorf("step %d: observers[%d] invoked %d times, want %d", step, i, obs.calls, want[i])
			}
		}
	}

	// Removing the first observer stops its deliveries only.
	if err := e.RemoveHandler(observers[0]); err != nil {
		t.Fatalf("RemoveHandler() error = %v", err)
	}
	if err := e.Fire(sender); err != nil {
		t.Fatalf("Fire() error = %v", err)
	}
	if observers[0].calls != 2 || observers[1].calls != 2 || observers[2].calls != 0 {
		t.Errorf("final counts = %d,%d,%d, want 2,2,0",
			observers[0].calls, observers[1].calls, observers[2].calls)
	}
}

func TestEvent_FirePayload(t *testing.T) {
	e := New()
	obs := &recorder{}
	sender := &struct{ id int }{42}

	if err := e.AddHandler(obs); err != nil {
		t.Fatalf("AddHandler() error = %v", err)
	}
	if err := e.Fire(sender, 1, "x"); err != nil {
		t.Fatalf("Fire() error = %v", err)
	}

	if obs.calls != 1 {
		t.Fatalf("observer invoked %d times, want 1", obs.calls)
	}
	if obs.sender != any(sender) {
		t.Errorf("sender = %v, want %v", obs.sender, sender)
	}
	if len(obs.args) != 2 || obs.args[0] != 1 || obs.args[1] != "x" {
		t.Errorf("args = %v, want [1 x]", obs.args)
	}
}

func TestEvent_Disconnect(t *testing.T) {
	e := New()
	obs := &recorder{}

	if err := e.AddHandler(obs); err != nil {
		t.Fatalf("AddHandler() error = %v", err)
	}

	e.Disconnect()

	if e.HasHandler(obs) {
		t.Error("expected handler to be gone after Disconnect")
	}
	if got := e.HandlerCount(); got != 0 {
		t.Errorf("HandlerCount() after Disconnect = %d, want 0", got)
	}

	// The event survives a disconnect.
	if err := e.AddHandler(obs); err != nil {
		t.Fatalf("AddHandler() after Disconnect error = %v", err)
	}
	if err := e.Fire("sender"); err != nil {
		t.Fatalf("Fire() after Disconnect error = %v", err)
	}
	if obs.calls != 1 {
		t.Errorf("observer invoked %d times after reconnect, want 1", obs.calls)
	}
}

func TestEvent_RemoveHandlerNotFound(t *testing.T) {
	e := New()

	if err := e.RemoveHandler(&recorder{}); !errors.Is(err, ErrHandlerNotFound) {
		t.Errorf("RemoveHandler() error = %v, want ErrHandlerNotFound", err)
	}
}

func TestEvent_LazyCollection(t *testing.T) {
	e := New()

	first := e.Handlers()
	if first == nil {
		t.Fatal("Handlers() = nil, want lazily created collection")
	}
	if second := e.Handlers(); second != first {
		t.Error("Handlers() returned a different collection on second access")
	}

	e.Disconnect()
	if third := e.Handlers(); third != first {
		t.Error("Disconnect replaced the collection; want it emptied in place")
	}
}

func TestEvent_ZeroValue(t *testing.T) {
	var e Event
	obs := &recorder{}

	if err := e.AddHandler(obs); err != nil {
		t.Fatalf("AddHandler() on zero value error = %v", err)
	}
	if err := e.Fire("sender"); err != nil {
		t.Fatalf("Fire() on zero value error = %v", err)
	}
	if obs.calls != 1 {
		t.Errorf("observer invoked %d times, want 1", obs.calls)
	}
}
