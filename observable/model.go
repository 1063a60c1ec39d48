package observable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/evoke/event"
	"github.com/dshills/evoke/property"
)

// ErrRedeclared is returned when attaching or declaring a name that is
// already registered; declared events are read-only and cannot be
// replaced.
var ErrRedeclared = errors.New("event is already declared for this name")

// Model is the event wiring for one owner type: a registry of named
// changed events plus a shared slot that fires for every property
// change on the type.
type Model[O comparable] struct {
	mu      sync.RWMutex
	slots   map[string]*event.Slot[O]
	changed *event.Slot[O]
}

// NewModel creates an empty model for owners of type O.
func NewModel[O comparable]() *Model[O] {
	return &Model[O]{
		slots:   make(map[string]*event.Slot[O]),
		changed: event.NewSlot[O](),
	}
}

// Changed returns the shared "any property changed" slot. Firings
// carry the same property.Change payload as the per-property events,
// so handlers can tell which property changed by name.
func (m *Model[O]) Changed() *event.Slot[O] {
	return m.changed
}

// EventOf returns the changed slot registered under name.
func (m *Model[O]) EventOf(name string) (*event.Slot[O], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.slots[name]
	return s, ok
}

// Names returns the registered property names, sorted.
func (m *Model[O]) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.slots))
	for name := range m.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declare registers a named changed slot with no property behind it.
// The caller is responsible for firing it when the underlying value
// changes. Declaring a name twice returns ErrRedeclared.
func (m *Model[O]) Declare(name string) (*event.Slot[O], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slots[name]; ok {
		return nil, fmt.Errorf("declare %q: %w", name, ErrRedeclared)
	}

	s := event.NewSlot[O]()
	m.slots[name] = s
	return s, nil
}

// register stores a property's own changed slot under its name.
func (m *Model[O]) register(name string, s *event.Slot[O]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slots[name]; ok {
		return fmt.Errorf("attach %q: %w", name, ErrRedeclared)
	}

	m.slots[name] = s
	return nil
}

// Attach registers a property's changed event under the property's
// name and wires the model's shared changed slot into the property.
// It returns the property for use in var-block wiring. Attaching a
// name twice returns ErrRedeclared.
func Attach[O comparable, T any](m *Model[O], p *property.Property[O, T]) (*property.Property[O, T], error) {
	if err := m.register(p.Name(), p.Changed()); err != nil {
		return nil, err
	}

	p.AlsoNotify(m.Changed())
	return p, nil
}

// MustAttach is Attach for package-level var wiring; it panics on a
// redeclared name, which is always a programming error at definition
// time.
func MustAttach[O comparable, T any](m *Model[O], p *property.Property[O, T]) *property.Property[O, T] {
	attached, err := Attach(m, p)
	if err != nil {
		panic(err)
	}
	return attached
}
