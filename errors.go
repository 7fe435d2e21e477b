package funcs

import "fmt"

// InvalidArgumentError is the panic payload raised by a factory when a
// required argument is nil. It is always raised at construction time, never
// when the built function is applied.
type InvalidArgumentError struct {
	// Arg names the offending factory parameter.
	Arg string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("funcs: %s must not be nil", e.Arg)
}

// NullReferenceError is the panic payload raised by the ToString function
// when applied to a nil value. Unlike InvalidArgumentError it is raised at
// call time: the factory accepts unconditionally, and a nil argument to the
// built function is a caller bug that must surface loudly instead of being
// rendered as a "nil" string.
type NullReferenceError struct{}

// Error implements the error interface.
func (e *NullReferenceError) Error() string {
	return "funcs: cannot render textual representation of nil"
}
