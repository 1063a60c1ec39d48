package property

import (
	"reflect"

	"github.com/dshills/evoke/event"
)

// Equality decides whether two values are the same; a set that leaves
// the value equal under it fires nothing.
type Equality[T any] func(old, value T) bool

// DeepEqual is the default equality, comparing with reflect.DeepEqual.
func DeepEqual[T any]() Equality[T] {
	return func(old, value T) bool {
		return reflect.DeepEqual(old, value)
	}
}

// Option configures a Property.
type Option[O comparable, T any] func(*Property[O, T])

// WithGetter sets the read accessor.
func WithGetter[O comparable, T any](get Getter[O, T]) Option[O, T] {
	return func(p *Property[O, T]) {
		p.get = get
	}
}

// WithSetter sets the write accessor.
func WithSetter[O comparable, T any](set Setter[O, T]) Option[O, T] {
	return func(p *Property[O, T]) {
		p.set = set
	}
}

// WithDeleter sets the delete accessor.
func WithDeleter[O comparable, T any](del Deleter[O]) Option[O, T] {
	return func(p *Property[O, T]) {
		p.del = del
	}
}

// WithEquality replaces the default reflect.DeepEqual comparison.
func WithEquality[O comparable, T any](eq Equality[T]) Option[O, T] {
	return func(p *Property[O, T]) {
		if eq != nil {
			p.eq = eq
		}
	}
}

// WithBroadcast wires a shared slot fired after the property's own
// changed event, equivalent to calling AlsoNotify after construction.
func WithBroadcast[O comparable, T any](s *event.Slot[O]) Option[O, T] {
	return func(p *Property[O, T]) {
		p.broadcast = s
	}
}
