// Package funcs provides factories for function objects: immutable values
// exposing a single Apply(input) -> output transformation.
//
// Each factory builds one adapter — identity, constant, map-backed lookup,
// composition, predicate adaptation, or a type-narrowing view — so that
// closures, maps and predicates can all be passed around behind the one
// Function capability interface.
package funcs

import "fmt"

// ============================================================================
// Capability Interfaces
// ============================================================================

// Function is the unary-transformation capability: any type offering
// Apply(input) -> output. Every value returned by the factories in this
// package implements it, and all of them are immutable after construction.
type Function[A, B any] interface {
	Apply(A) B
}

// Predicate is the single-argument boolean test capability. It is an
// external collaborator of this package: ForPredicate adapts it to a
// bool-valued Function but this package implements no predicate algebra of
// its own.
type Predicate[T any] interface {
	Test(T) bool
}

// ============================================================================
// Functional Bindings
// ============================================================================

// Func is a functional binding for Function. It lets a plain closure satisfy
// the capability interface without a wrapper struct.
//
// Example:
//
//	double := Func[int, int](func(n int) int { return n * 2 })
//	double.Apply(21) // 42
type Func[A, B any] func(A) B

// Apply implements Function.
func (f Func[A, B]) Apply(a A) B {
	return f(a)
}

// PredicateFunc is a functional binding for Predicate.
type PredicateFunc[T any] func(T) bool

// Test implements Predicate.
func (f PredicateFunc[T]) Test(t T) bool {
	return f(t)
}

// NewFunction creates a Function from a plain function.
func NewFunction[A, B any](fn func(A) B) Function[A, B] {
	return Func[A, B](fn)
}

// NewPredicate creates a Predicate from a plain function.
func NewPredicate[T any](fn func(T) bool) Predicate[T] {
	return PredicateFunc[T](fn)
}

// ============================================================================
// Identity
// ============================================================================

// identityFunction is zero-size, so every instantiation is allocation-free
// and all values of one instantiation are interchangeable. Sound only
// because Apply never inspects its argument.
type identityFunction[E any] struct{}

// Apply implements Function.
func (identityFunction[E]) Apply(e E) E {
	return e
}

// Identity returns the function that returns its argument unchanged, at any
// type instantiation. The returned value carries no state: repeated calls at
// the same type yield interchangeable, equal instances.
func Identity[E any]() Function[E, E] {
	return identityFunction[E]{}
}

// ============================================================================
// ToString
// ============================================================================

type toStringFunction struct{}

// Apply implements Function.
func (toStringFunction) Apply(v any) string {
	if v == nil {
		// A nil argument is a caller bug; rendering "<nil>" would mask it.
		panic(&NullReferenceError{})
	}
	return fmt.Sprint(v)
}

// ToString returns the function producing a value's textual representation,
// honoring fmt.Stringer where implemented. Applying it to nil panics with
// *NullReferenceError rather than producing a "nil" string.
func ToString() Function[any, string] {
	return toStringFunction{}
}

// ============================================================================
// Map Lookup
// ============================================================================

type mapFunction[A comparable, B any] struct {
	m map[A]B
}

// Apply implements Function.
func (f mapFunction[A, B]) Apply(a A) Option[B] {
	if v, ok := f.m[a]; ok {
		return Some(v)
	}
	return None[B]()
}

// ForMap returns a function performing key-to-value lookup on m. Keys absent
// from m yield None.
//
// The map is captured by reference, not copied: mutations of m after
// construction are visible through the function, and lookups concurrent with
// such mutations get exactly the map's own concurrency guarantees — this
// package adds no locking.
//
// Panics with *InvalidArgumentError if m is nil.
func ForMap[A comparable, B any](m map[A]B) Function[A, Option[B]] {
	if m == nil {
		panic(&InvalidArgumentError{Arg: "mapping"})
	}
	return mapFunction[A, B]{m: m}
}

type mapDefaultFunction[A comparable, B any] struct {
	m   map[A]B
	def B
}

// Apply implements Function.
func (f mapDefaultFunction[A, B]) Apply(a A) B {
	// Membership, not the looked-up value, decides the branch: a stored
	// zero value wins over the default.
	if v, ok := f.m[a]; ok {
		return v
	}
	return f.def
}

// ForMapWithDefault returns a function performing key-to-value lookup on m,
// substituting def for keys absent from m. A key that is present returns its
// stored value even when that value is the zero value of B.
//
// The map is aliased, not copied, with the same mutation-visibility contract
// as ForMap. def may be any value, including the zero value.
//
// Panics with *InvalidArgumentError if m is nil.
func ForMapWithDefault[A comparable, B any](m map[A]B, def B) Function[A, B] {
	if m == nil {
		panic(&InvalidArgumentError{Arg: "mapping"})
	}
	return mapDefaultFunction[A, B]{m: m, def: def}
}

// ============================================================================
// Composition
// ============================================================================

type composedFunction[A, B, C any] struct {
	g Function[B, C]
	f Function[A, B]
}

// Apply implements Function.
func (c composedFunction[A, B, C]) Apply(a A) C {
	return c.g.Apply(c.f.Apply(a))
}

// Compose returns the composition h of two functions f: A->B and g: B->C,
// such that h(a) = g(f(a)). Evaluation order is fixed: f runs first, so a
// panic raised by f propagates before g is ever applied.
//
// Panics with *InvalidArgumentError if either argument is nil.
func Compose[A, B, C any](g Function[B, C], f Function[A, B]) Function[A, C] {
	if g == nil {
		panic(&InvalidArgumentError{Arg: "g"})
	}
	if f == nil {
		panic(&InvalidArgumentError{Arg: "f"})
	}
	return composedFunction[A, B, C]{g: g, f: f}
}

// ============================================================================
// Predicate Adaptation
// ============================================================================

// PredicateFunction adapts a Predicate to a bool-valued Function. The
// wrapped predicate is its only state, held in an exported field, so the
// adapter round-trips through encoding/gob whenever the concrete predicate
// type does (register it with gob.Register first).
type PredicateFunction[T any] struct {
	Pred Predicate[T]
}

// Apply implements Function.
func (p PredicateFunction[T]) Apply(t T) bool {
	return p.Pred.Test(t)
}

// ForPredicate returns a bool-valued function that evaluates to the same
// result as testing the input against pred.
//
// Panics with *InvalidArgumentError if pred is nil.
func ForPredicate[T any](pred Predicate[T]) Function[T, bool] {
	if pred == nil {
		panic(&InvalidArgumentError{Arg: "predicate"})
	}
	return PredicateFunction[T]{Pred: pred}
}

// ============================================================================
// Constant
// ============================================================================

type constantFunction[E any] struct {
	value E
}

// Apply implements Function.
func (c constantFunction[E]) Apply(_ any) E {
	return c.value
}

// Constant returns a function that returns value for any input, ignoring its
// argument entirely. value may be nil or zero.
func Constant[E any](value E) Function[any, E] {
	return constantFunction[E]{value: value}
}

// ============================================================================
// Narrow
// ============================================================================

type narrowedFunction[A, B any] struct {
	f Function[any, B]
}

// Apply implements Function.
func (n narrowedFunction[A, B]) Apply(a A) B {
	return n.f.Apply(a)
}

// Narrow adapts a function that accepts any input for use where a
// concretely-typed Function[A, B] is required, for example to pass the
// result of Constant to an API demanding a specific input type. The view is
// pure delegation: no runtime check, no transformation, identical outputs
// for identical inputs.
//
// A nil input yields a nil output; it never panics.
func Narrow[A, B any](f Function[any, B]) Function[A, B] {
	if f == nil {
		return nil
	}
	return narrowedFunction[A, B]{f: f}
}
