/*
Package funcs provides factories for function objects: immutable values
exposing a single Apply(input) -> output transformation.

# Overview

Funcs is a construction kit for the small adapters that turn ordinary Go
values — closures, maps, predicates, constants — into one uniform capability:

	type Function[A, B any] interface {
	    Apply(A) B
	}

Every factory is a pure, context-free construction step. There is no runtime,
no state machine, no I/O, and no shared mutable state: a built function is
immutable and safe to share across goroutines (map-backed lookups inherit the
backing map's own concurrency contract, nothing more).

# Factories

  - Identity: Apply(x) = x at any type instantiation, allocation-free.
  - ToString: Apply(x) = x's textual representation; panics on nil input
    instead of rendering a "nil" string.
  - ForMap: key-to-value lookup over an aliased map; missing keys yield None.
  - ForMapWithDefault: lookup with a default for missing keys; membership,
    not the stored value, decides the branch.
  - Compose: h(a) = g(f(a)), f strictly first.
  - ForPredicate: adapts a Predicate to a bool-valued Function; the adapter
    carries no state beyond the predicate, so it survives a gob round-trip
    whenever the predicate does.
  - Constant: ignores its argument and returns the captured value.
  - Narrow: re-types an any-input function at a narrower input type, with no
    runtime cost beyond delegation.

# Failure Contract

Factories validate eagerly: a nil required argument (mapping, composed
function, predicate) panics with *InvalidArgumentError at construction time,
before any Apply is possible. The one deliberate exception is ToString, whose
factory accepts unconditionally and whose function panics with
*NullReferenceError at call time. Passing nil through it is a caller bug that
must be loud, not silently stringified.

# Quick Example

	rank := funcs.ForMapWithDefault(map[string]int{"gold": 1, "silver": 2}, 99)
	label := funcs.Compose(funcs.Narrow[int, string](funcs.ToString()), rank)

	label.Apply("gold")   // "1"
	label.Apply("bronze") // "99"

# Package Import

	import "github.com/Pure-Company/funcs"
*/
package funcs
