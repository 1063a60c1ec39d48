package document

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ChangeType represents the type of document change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeDelete indicates a value was deleted.
	ChangeDelete

	// ChangeReplace indicates the entire document was replaced.
	ChangeReplace
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change represents a document change event.
type Change struct {
	// Path is the dot-separated path to the changed value.
	// Empty for whole-document replacement.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value at the path (nil if absent).
	OldValue any

	// NewValue is the new value (nil for deletes).
	NewValue any
}

// Observer is called when a document change occurs.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id   uuid.UUID
	path string
	doc  *Document
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.doc != nil {
		s.doc.unsubscribe(s.id)
	}
}

// Document is a JSON document with path-level change notification.
// It is safe for concurrent use; observers are invoked synchronously,
// outside the document lock.
type Document struct {
	mu sync.RWMutex

	raw []byte

	// Observers that receive all changes
	global map[uuid.UUID]Observer

	// Path-specific observers
	byPath map[string]map[uuid.UUID]Observer
}

// New creates a document from raw JSON. Nil or empty input starts an
// empty object; anything else must be valid JSON.
func New(raw []byte) (*Document, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}

	d := &Document{
		raw:    append([]byte(nil), raw...),
		global: make(map[uuid.UUID]Observer),
		byPath: make(map[string]map[uuid.UUID]Observer),
	}
	return d, nil
}

// Raw returns a copy of the document's JSON bytes.
func (d *Document) Raw() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]byte(nil), d.raw...)
}

// Get resolves a path in the document.
func (d *Document) Get(path string) gjson.Result {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return gjson.GetBytes(d.raw, path)
}

// Set writes value at path. Observers are notified only when the write
// changes the value at the path; setting an equal value is silent.
func (d *Document) Set(path string, value any) error {
	return d.setStaged(path, value, d.deliver)
}

// setStaged applies a set and hands the resulting change to sink.
func (d *Document) setStaged(path string, value any, sink func(Change)) error {
	d.mu.Lock()

	old := gjson.GetBytes(d.raw, path)

	updated, err := sjson.SetBytes(d.raw, path, value)
	if err != nil {
		d.mu.Unlock()
		return fmt.Errorf("set %q: %w", path, err)
	}

	now := gjson.GetBytes(updated, path)
	if old.Exists() && old.Raw == now.Raw {
		d.raw = updated
		d.mu.Unlock()
		return nil
	}

	d.raw = updated
	d.mu.Unlock()

	var oldValue any
	if old.Exists() {
		oldValue = old.Value()
	}

	sink(Change{
		Path:     path,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: now.Value(),
	})
	return nil
}

// Delete removes the value at path. Deleting a path that does not
// exist returns ErrPathNotFound.
func (d *Document) Delete(path string) error {
	return d.deleteStaged(path, d.deliver)
}

// deleteStaged applies a delete and hands the resulting change to sink.
func (d *Document) deleteStaged(path string, sink func(Change)) error {
	d.mu.Lock()

	old := gjson.GetBytes(d.raw, path)
	if !old.Exists() {
		d.mu.Unlock()
		return fmt.Errorf("delete %q: %w", path, ErrPathNotFound)
	}

	updated, err := sjson.DeleteBytes(d.raw, path)
	if err != nil {
		d.mu.Unlock()
		return fmt.Errorf("delete %q: %w", path, err)
	}

	d.raw = updated
	d.mu.Unlock()

	sink(Change{
		Path:     path,
		Type:     ChangeDelete,
		OldValue: old.Value(),
	})
	return nil
}

// Replace swaps the entire document and notifies every observer with a
// ChangeReplace carrying the old and new documents.
func (d *Document) Replace(raw []byte) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if !gjson.ValidBytes(raw) {
		return ErrInvalidJSON
	}

	d.mu.Lock()
	old := d.raw
	d.raw = append([]byte(nil), raw...)
	d.mu.Unlock()

	d.deliver(Change{
		Type:     ChangeReplace,
		OldValue: gjson.ParseBytes(old).Value(),
		NewValue: gjson.ParseBytes(raw).Value(),
	})
	return nil
}

// Subscribe registers an observer for all changes.
func (d *Document) Subscribe(fn Observer) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilObserver
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.New()
	d.global[id] = fn

	return &Subscription{id: id, doc: d}, nil
}

// SubscribePath registers an observer for changes at a specific path.
// The observer is called for exact matches and for changes below the
// path: subscribing to "editor" receives changes to "editor.tabSize".
func (d *Document) SubscribePath(path string, fn Observer) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilObserver
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.New()
	if d.byPath[path] == nil {
		d.byPath[path] = make(map[uuid.UUID]Observer)
	}
	d.byPath[path][id] = fn

	return &Subscription{id: id, path: path, doc: d}, nil
}

// Observers returns the total number of registered observers.
func (d *Document) Observers() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := len(d.global)
	for _, obs := range d.byPath {
		n += len(obs)
	}
	return n
}

// unsubscribe removes an observer by ID.
func (d *Document) unsubscribe(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.global, id)

	for path, obs := range d.byPath {
		delete(obs, id)
		if len(obs) == 0 {
			delete(d.byPath, path)
		}
	}
}

// deliver sends a change to all matching observers, outside the lock.
func (d *Document) deliver(change Change) {
	d.mu.RLock()

	var observers []Observer

	for _, fn := range d.global {
		observers = append(observers, fn)
	}

	if change.Path != "" {
		if pathObs, ok := d.byPath[change.Path]; ok {
			for _, fn := range pathObs {
				observers = append(observers, fn)
			}
		}

		for path, pathObs := range d.byPath {
			if isParentPath(path, change.Path) {
				for _, fn := range pathObs {
					observers = append(observers, fn)
				}
			}
		}
	} else {
		// Whole-document replacement reaches path observers too.
		for _, pathObs := range d.byPath {
			for _, fn := range pathObs {
				observers = append(observers, fn)
			}
		}
	}

	d.mu.RUnlock()

	for _, fn := range observers {
		fn(change)
	}
}

// isParentPath checks if parent is a parent path of child.
// e.g., "editor" is parent of "editor.tabSize".
func isParentPath(parent, child string) bool {
	if len(parent) >= len(child) {
		return false
	}
	if parent == "" {
		return true
	}
	return child[:len(parent)] == parent && child[len(parent)] == '.'
}
