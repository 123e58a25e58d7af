// Package structs holds the plumbing shared by the container packages: the
// Maybe option type and the error kinds.
package structs

import "fmt"

// Maybe holds a value that may be absent. The zero value is Nothing.
// Absence is carried as a tag, never as an in-band sentinel, so a zero value
// (or a nil) stored in a container stays distinguishable from the container
// being empty.
type Maybe[T any] struct {
	v  T
	ok bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{v, true}
}

// Nothing is the absent value of type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Present reports whether a value is held.
func (m Maybe[T]) Present() bool {
	return m.ok
}

// Get returns the held value and whether one was present.
func (m Maybe[T]) Get() (T, bool) {
	return m.v, m.ok
}

// GetOrElse returns the held value, or d when absent.
func (m Maybe[T]) GetOrElse(d T) T {
	if m.ok {
		return m.v
	}
	return d
}

func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Just(%v)", m.v)
	}
	return "Nothing"
}
