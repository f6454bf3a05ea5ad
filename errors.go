package gollections

import "errors"

var (
	// A negative occurrence count was passed to a multiset mutation
	ErrNegativeOccurrences = errors.New("gollections: occurrences cannot be negative")

	// Adding the requested occurrences would overflow the element's
	// frequency counter
	ErrCountOverflow = errors.New("gollections: occurrence count overflow")

	// The value is already bound to a different key in the bimap
	ErrValueAlreadyPresent = errors.New("gollections: value already bound to another key")

	// The view does not support the requested mutation
	ErrUnsupportedOperation = errors.New("gollections: operation not supported by this view")
)
