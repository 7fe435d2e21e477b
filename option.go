package funcs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Option represents a value which may or may not be there. This is very often
// preferable to nil-able pointers, and it is the result type of the lookup
// functions built by ForMap: a missing key yields None rather than a zero
// value that could collide with a legitimately stored one.
//
// Option[T] is comparable whenever T is, so two options of a comparable type
// can be checked with ==.
type Option[T any] struct {
	value   T
	present bool
}

// Some injects a value into an optional context.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None constructs an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr constructs an option from a pointer: nil becomes None, anything
// else becomes Some of the pointed-to value.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// UnwrapOr returns the contained value, or the supplied default when the
// option is empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value, or evaluates the thunk when the
// option is empty.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// UnwrapOrFail extracts the value within a test context, failing the test if
// the option is empty.
func (o Option[T]) UnwrapOrFail(t *testing.T) T {
	t.Helper()

	require.True(t, o.present, "Option[%T] was None()", o.value)

	return o.value
}

// WhenSome runs the side-effecting function against the contained value, if
// there is one.
func (o Option[T]) WhenSome(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// ToPtr converts the option to a pointer: None becomes nil.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// MapOption applies a transformation inside the optional context: Some maps
// through fn, None stays None.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}
