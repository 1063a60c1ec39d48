package property

import "errors"

// Sentinel errors for property access.
var (
	// ErrUnreadable is returned when reading a property with no getter.
	ErrUnreadable = errors.New("unreadable attribute")

	// ErrReadOnly is returned when setting a property with no setter.
	ErrReadOnly = errors.New("attribute is read-only")

	// ErrCannotDelete is returned when deleting a property with no deleter.
	ErrCannotDelete = errors.New("cannot delete attribute")
)
