package document

import "sync"

// Batch stages writes against a document and delivers their
// notifications together on Commit. Writes are applied to the document
// immediately; only the observer deliveries are deferred.
type Batch struct {
	doc *Document

	mu      sync.Mutex
	changes []Change
}

// NewBatch creates a batch for staging change deliveries.
func (d *Document) NewBatch() *Batch {
	return &Batch{doc: d}
}

// Set writes value at path, staging the notification instead of
// delivering it. Setting an equal value stages nothing.
func (b *Batch) Set(path string, value any) error {
	return b.doc.setStaged(path, value, b.stage)
}

// Delete removes the value at path, staging the notification.
func (b *Batch) Delete(path string) error {
	return b.doc.deleteStaged(path, b.stage)
}

// Len returns the number of staged notifications.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.changes)
}

// Commit delivers all staged notifications in write order.
func (b *Batch) Commit() {
	b.mu.Lock()
	changes := b.changes
	b.changes = nil
	b.mu.Unlock()

	for _, change := range changes {
		b.doc.deliver(change)
	}
}

// Discard drops staged notifications without delivering them. The
// writes themselves remain applied.
func (b *Batch) Discard() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.changes = nil
}

// stage records a change for later delivery.
func (b *Batch) stage(change Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.changes = append(b.changes, change)
}
