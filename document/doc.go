// Package document provides a JSON document whose writes fire change
// notifications.
//
// A Document wraps raw JSON bytes. Reads resolve dot-separated paths
// with gjson; writes go through sjson and, when the write actually
// changes the value at the path, notify subscribed observers with a
// Change carrying the path, the change type, and the old and new
// values.
//
//	doc, _ := document.New([]byte(`{"editor":{"tabSize":4}}`))
//
//	sub := doc.SubscribePath("editor", func(change document.Change) {
//	    fmt.Printf("%s: %v -> %v\n", change.Path, change.OldValue, change.NewValue)
//	})
//	defer sub.Unsubscribe()
//
//	_ = doc.Set("editor.tabSize", 8) // delivers to the "editor" subscriber
//	_ = doc.Set("editor.tabSize", 8) // same value, delivers nothing
//
// Path subscriptions receive exact matches and changes below them:
// subscribing to "editor" receives changes to "editor.tabSize".
// Subscribe with no path receives every change, including
// whole-document replacement.
//
// Delivery is synchronous: Set, Delete, and Replace invoke every
// matching observer before returning, in unspecified order, outside
// the document lock. Use a Batch to stage several writes and deliver
// their notifications together on Commit.
//
// Forward bridges a Document into the event core, relaying each Change
// to an event.Event with a fixed sender.
package document
