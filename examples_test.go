package funcs_test

import (
	"fmt"

	"github.com/Pure-Company/funcs"
)

// ============================================================================
// Example 1: Lookup tables as functions
// ============================================================================

// Example_lookupTable turns a plain map into a function object, with and
// without a default for missing keys.
func Example_lookupTable() {
	statusNames := map[int]string{
		200: "OK",
		404: "Not Found",
		500: "Internal Server Error",
	}

	// No default: missing keys yield None.
	name := funcs.ForMap(statusNames)
	fmt.Println(name.Apply(200).UnwrapOr("?"))
	fmt.Println(name.Apply(418).IsNone())

	// With default: missing keys yield the fallback.
	nameOrUnknown := funcs.ForMapWithDefault(statusNames, "Unknown")
	fmt.Println(nameOrUnknown.Apply(404))
	fmt.Println(nameOrUnknown.Apply(418))

	// Output:
	// OK
	// true
	// Not Found
	// Unknown
}

// ============================================================================
// Example 2: Building pipelines with Compose
// ============================================================================

// Example_pipeline composes small functions into a processing step. The
// inner function always runs first: Compose(g, f) is g after f.
func Example_pipeline() {
	trimPort := funcs.Func[string, string](func(host string) string {
		for i := range host {
			if host[i] == ':' {
				return host[:i]
			}
		}
		return host
	})
	classify := funcs.ForMapWithDefault(map[string]string{
		"localhost": "loopback",
		"0.0.0.0":   "wildcard",
	}, "remote")

	kind := funcs.Compose[string, string, string](classify, trimPort)

	fmt.Println(kind.Apply("localhost:8080"))
	fmt.Println(kind.Apply("example.com:443"))

	// Output:
	// loopback
	// remote
}

// ============================================================================
// Example 3: Predicates as bool-valued functions
// ============================================================================

// Example_predicate adapts a predicate capability into a Function so it can
// flow through APIs that only understand Apply.
func Example_predicate() {
	isEven := funcs.NewPredicate(func(n int) bool { return n%2 == 0 })
	f := funcs.ForPredicate(isEven)

	fmt.Println(f.Apply(4))
	fmt.Println(f.Apply(3))

	// Output:
	// true
	// false
}

// ============================================================================
// Example 4: Constant and Narrow
// ============================================================================

// Example_constantNarrow shows how Narrow re-types the any-input function
// built by Constant so it fits a concretely-typed call site.
func Example_constantNarrow() {
	// A scoring hook demanding a Function[string, int].
	score := func(f funcs.Function[string, int], words []string) int {
		total := 0
		for _, w := range words {
			total += f.Apply(w)
		}
		return total
	}

	words := []string{"go", "funcs"}

	flat := funcs.Narrow[string, int](funcs.Constant(10))
	byLength := funcs.Func[string, int](func(w string) int { return len(w) })

	fmt.Println(score(flat, words))
	fmt.Println(score(byLength, words))

	// Output:
	// 20
	// 7
}

// ============================================================================
// Example 5: Identity as a no-op stage
// ============================================================================

// Example_identity uses Identity where a pipeline stage is required but no
// transformation is wanted.
func Example_identity() {
	normalize := map[bool]funcs.Function[string, string]{
		true:  funcs.Func[string, string](func(s string) string { return s + "!" }),
		false: funcs.Identity[string](),
	}

	fmt.Println(normalize[true].Apply("loud"))
	fmt.Println(normalize[false].Apply("quiet"))

	// Output:
	// loud!
	// quiet
}
