/*
Package purefuncseq provides pure, generic sequence and function-composition utilities.

# Overview

Purefuncseq is the functional vocabulary for plain Go slices and functions:
Map, Reduce, Fold, Compose, currying and partial application, plus the
sequence helpers (Filter, Find, UniqueBy, Take, Reversed) and aggregates
(Sum, Min, Max) that round them out. Every operation is pure: inputs are
never mutated, results are freshly allocated, and the same arguments always
produce the same result.

# Key Benefits

  - No mutation: callers keep ownership of every slice they pass in
  - Type-safe arity: currying and composition are checked at compile time,
    so there is no runtime arity error to handle
  - Rich composition: Compose, Pipe, Pipeline monoid, predicate combinators
  - Fail-fast: the Err variants stop at the first failing stage and
    propagate its error unchanged

# Quick Example

Turn a procedural loop:

	var roots []float64
	for _, n := range nums {
	    roots = append(roots, math.Sqrt(n))
	}
	var total float64
	for _, r := range roots {
	    total += r
	}

into a composition:

	total := purefuncseq.Compose2(
	    purefuncseq.Sum[float64],
	    purefuncseq.MapWith(math.Sqrt),
	)(nums)

# Core Concepts

Purity: no operation modifies its arguments. The procedural in-place idioms
(reverse a slice, shift elements off the front) become Reversed and Take,
which copy.

Right-to-left composition: Compose, Compose2, Compose3, and
Pipeline.Compose apply their last function first, matching the mathematical
reading f(g(x)). Pipe and Pipeline.Then are the left-to-right reading.

Static arity: Go's type system stands in for runtime arity checks. Partial2
fixes one argument in a single step; Curry2 and Curry3 produce the full
one-argument-at-a-time chain. Applying too few or too many arguments is a
compile error, not a panic.

Fail-fast errors: MapErr, ReduceErr, and ComposeErr accept fallible
functions and short-circuit on the first error. Nothing in the package
recovers panics or wraps errors; a failure in caller code surfaces to the
caller untouched. Fold, Min, and Max report ErrEmptySequence when given
nothing to work with.

# Available Operations

Transforms:
  - Map, MapErr, MapWith

Currying:
  - Partial2, Partial3, Curry2, Curry3, Uncurry2

Folds:
  - Reduce, Fold, ReduceErr

Composition:
  - Compose, Compose2, Compose3, Pipe, ComposeErr, Identity, Constant
  - Pipeline with Empty, Compose, Then
  - PredicateFunc with And, Or, Negate

Sequences:
  - Filter, ForEach, Exists, All, Contains, Find
  - UniqueBy, Take, Reversed

Aggregates:
  - Sum, Min, Max

Options:
  - Option, Some, None, MapOption

# Package Import

	import pfs "github.com/Pure-Company/purefuncseq"

	// Or full import
	import "github.com/Pure-Company/purefuncseq"
*/
package purefuncseq
