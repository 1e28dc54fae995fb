// Package purefuncseq provides pure, generic sequence and function-composition utilities.
//
// Every operation is side-effect free: inputs are never mutated and results
// are freshly allocated. The package covers the classic functional
// vocabulary (Map, Reduce, Fold, Compose, currying and partial application)
// plus the sequence helpers and function-value types that make them pleasant
// to combine.
//
// # Key Benefits
//
// - No mutation: callers keep ownership of every slice they pass in
// - Type-safe arity: currying and composition are checked at compile time
// - Rich composition: Compose, Pipe, Pipeline, predicate combinators
// - Fail-fast error variants: MapErr, ReduceErr, ComposeErr stop at the
// first failing stage and propagate its error unchanged
//
// # Quick Start
//
//	double := func(n int) int { return n * 2 }
//	inc := func(n int) int { return n + 1 }
//
//	purefuncseq.Map([]int{1, 2, 3}, double)          // [2 4 6]
//	purefuncseq.Reduce([]int{1, 2, 3}, 0, add)       // 6
//	purefuncseq.Compose(double, inc)(5)              // double(inc(5)) == 12
//	purefuncseq.Partial2(add, 5)(2)                  // 7
//
// Compose applies right to left: the last function runs first. Pipe is the
// left-to-right reading for when a pipeline is easier to follow top-down.
package purefuncseq

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrEmptySequence is returned by operations that need at least one element
// (Fold without an initial accumulator, Min, Max) when given an empty or nil
// sequence. Match it with errors.Is.
var ErrEmptySequence = errors.New("purefuncseq: empty sequence")

// Number constrains to the built-in integer and floating-point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// ============================================================================
// Function Value Types
// ============================================================================

// TransformFunc is a unary function from T to U, the element transform
// accepted by Map.
type TransformFunc[T, U any] func(T) U

// CombineFunc folds an element into an accumulator and returns the new
// accumulator. It must not mutate a caller-owned accumulator in place; build
// and return a new value instead (sharing unchanged structure is fine).
type CombineFunc[A, T any] func(acc A, x T) A

// PredicateFunc reports whether an element satisfies a condition.
// Predicates compose with And, Or, and Negate.
//
// Example:
//
//	positive := PredicateFunc[int](func(n int) bool { return n > 0 })
//	even := PredicateFunc[int](func(n int) bool { return n%2 == 0 })
//
//	Filter(nums, positive.And(even))
type PredicateFunc[T any] func(T) bool

// And returns a predicate satisfied when both predicates are.
func (p PredicateFunc[T]) And(q PredicateFunc[T]) PredicateFunc[T] {
	return func(x T) bool {
		return p(x) && q(x)
	}
}

// Or returns a predicate satisfied when either predicate is.
func (p PredicateFunc[T]) Or(q PredicateFunc[T]) PredicateFunc[T] {
	return func(x T) bool {
		return p(x) || q(x)
	}
}

// Negate returns the complement predicate.
func (p PredicateFunc[T]) Negate() PredicateFunc[T] {
	return func(x T) bool {
		return !p(x)
	}
}

// Pipeline is a transformation from T back to T. Pipelines form a monoid:
// Empty is the identity and Compose chains right to left, so stages read in
// the same order as Compose's arguments.
//
// Example:
//
//	clean := Pipeline[string](strings.TrimSpace).
//		Then(strings.ToLower)
type Pipeline[T any] func(T) T

// Empty returns the identity pipeline (monoid identity).
func (p Pipeline[T]) Empty() Pipeline[T] {
	return func(x T) T { return x }
}

// Compose returns a pipeline that applies next first, then p (monoid
// operation, right-to-left like package-level Compose).
func (p Pipeline[T]) Compose(next Pipeline[T]) Pipeline[T] {
	return func(x T) T {
		return p(next(x))
	}
}

// Then returns a pipeline that applies p first, then next (left-to-right).
func (p Pipeline[T]) Then(next Pipeline[T]) Pipeline[T] {
	return func(x T) T {
		return next(p(x))
	}
}

// ============================================================================
// Map
// ============================================================================

// Map returns a new slice where element i is f(s[i]). The result has the
// same length and order as s, and s itself is never modified.
//
// Example:
//
//	roots := Map([]float64{9, 64}, math.Sqrt) // [3 8]
func Map[T, U any](s []T, f TransformFunc[T, U]) []U {
	out := make([]U, len(s))
	for i, x := range s {
		out[i] = f(x)
	}
	return out
}

// MapErr is Map for transforms that can fail. It stops at the first error:
// remaining elements are not visited and the failing stage's error is
// returned unchanged.
func MapErr[T, U any](s []T, f func(T) (U, error)) ([]U, error) {
	out := make([]U, len(s))
	for i, x := range s {
		y, err := f(x)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

// MapWith returns Map with the transform fixed, awaiting the sequence.
// It is the curried, function-first reading of Map.
//
// Example:
//
//	sqrtAll := MapWith(math.Sqrt)
//	sqrtAll([]float64{9, 64}) // [3 8]
func MapWith[T, U any](f TransformFunc[T, U]) func([]T) []U {
	return func(s []T) []U {
		return Map(s, f)
	}
}

// ============================================================================
// Currying and Partial Application
// ============================================================================

// Partial2 fixes the first argument of a binary function.
//
// Example:
//
//	add := func(x, y int) int { return x + y }
//	addFive := Partial2(add, 5)
//	addFive(2) // 7
func Partial2[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Partial3 fixes the first argument of a ternary function.
func Partial3[A, B, C, D any](f func(A, B, C) D, a A) func(B, C) D {
	return func(b B, c C) D {
		return f(a, b, c)
	}
}

// Curry2 converts a binary function into its fully curried form, taking one
// argument at a time.
//
// Example:
//
//	Curry2(add)(5)(2) // 7
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 converts a ternary function into its fully curried form.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// ============================================================================
// Reduce
// ============================================================================

// Reduce folds s left to right, starting from initial. An empty or nil
// sequence returns initial unchanged. Reduce never modifies s; the combine
// function owns producing each new accumulator (see CombineFunc).
//
// Example:
//
//	Reduce([]int{1, 2, 3}, 0, add)  // 6
//	Reduce([]int{1, 2, 3}, 10, add) // 16
func Reduce[T, A any](s []T, initial A, f CombineFunc[A, T]) A {
	acc := initial
	for _, x := range s {
		acc = f(acc, x)
	}
	return acc
}

// Fold is Reduce without an initial accumulator: s[0] seeds the fold and
// combining starts from s[1]. An empty or nil sequence returns the zero
// value and ErrEmptySequence.
func Fold[T any](s []T, f func(T, T) T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	acc := s[0]
	for _, x := range s[1:] {
		acc = f(acc, x)
	}
	return acc, nil
}

// ReduceErr is Reduce for combine functions that can fail. It stops at the
// first error and returns the zero accumulator with the stage's error
// unchanged.
func ReduceErr[T, A any](s []T, initial A, f func(A, T) (A, error)) (A, error) {
	acc := initial
	for _, x := range s {
		next, err := f(acc, x)
		if err != nil {
			var zero A
			return zero, err
		}
		acc = next
	}
	return acc, nil
}

// ============================================================================
// Compose
// ============================================================================

// Identity returns its argument unchanged. It is the unit of composition.
func Identity[T any](x T) T {
	return x
}

// Constant returns a function that ignores its argument and always returns v.
func Constant[T, U any](v U) func(T) U {
	return func(T) U {
		return v
	}
}

// Compose2 composes two functions right to left: the returned function
// applies g first, then f.
//
// Example:
//
//	total := Compose2(Sum[float64], MapWith(math.Sqrt))
//	total([]float64{9, 64}) // Sum([3 8]) == 11
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(x A) C {
		return f(g(x))
	}
}

// Compose3 composes three functions right to left: h, then g, then f.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(x A) D {
		return f(g(h(x)))
	}
}

// Compose chains any number of same-type functions right to left: the last
// function runs first, the first runs last. With no functions it returns the
// identity.
//
// Example:
//
//	shout := Compose(addBang, strings.ToUpper)
//	shout("hey") // addBang(strings.ToUpper("hey")) == "HEY!"
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		acc := x
		for i := len(fns) - 1; i >= 0; i-- {
			acc = fns[i](acc)
		}
		return acc
	}
}

// Pipe applies fns to value left to right and returns the final result. It
// is Compose read in the other direction, applied immediately.
//
// Example:
//
//	Pipe("  Go  ", strings.TrimSpace, strings.ToLower) // "go"
func Pipe[T any](value T, fns ...func(T) T) T {
	acc := value
	for _, fn := range fns {
		acc = fn(acc)
	}
	return acc
}

// ComposeErr composes two fallible functions right to left. g runs first; if
// it fails, f never runs and g's error is returned unchanged.
func ComposeErr[A, B, C any](f func(B) (C, error), g func(A) (B, error)) func(A) (C, error) {
	return func(x A) (C, error) {
		y, err := g(x)
		if err != nil {
			var zero C
			return zero, err
		}
		return f(y)
	}
}

// ============================================================================
// Option
// ============================================================================

// Option holds either some value of T or none. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding x.
func Some[T any](x T) Option[T] {
	return Option[T]{value: x, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Value returns the held value and panics on None.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("purefuncseq: Value on None")
	}
	return o.value
}

// ValueOr returns the held value, or def on None.
func (o Option[T]) ValueOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("%v", o.value)
}

// MapOption transforms the held value, mapping None to None.
func MapOption[T, U any](o Option[T], f TransformFunc[T, U]) Option[U] {
	if !o.ok {
		return Option[U]{}
	}
	return Some(f(o.value))
}

// ============================================================================
// Sequence Helpers
// ============================================================================

// Filter returns a new slice holding, in order, the elements of s that
// satisfy p. s is never modified.
func Filter[T any](s []T, p PredicateFunc[T]) []T {
	out := make([]T, 0, len(s))
	for _, x := range s {
		if p(x) {
			out = append(out, x)
		}
	}
	return out
}

// ForEach calls f on each element of s in order.
func ForEach[T any](s []T, f func(T)) {
	for _, x := range s {
		f(x)
	}
}

// Exists reports whether some element of s satisfies p.
func Exists[T any](s []T, p PredicateFunc[T]) bool {
	for _, x := range s {
		if p(x) {
			return true
		}
	}
	return false
}

// All reports whether every element of s satisfies p. All of an empty
// sequence is true.
func All[T any](s []T, p PredicateFunc[T]) bool {
	for _, x := range s {
		if !p(x) {
			return false
		}
	}
	return true
}

// Contains reports whether x occurs in s.
func Contains[T comparable](s []T, x T) bool {
	return Exists(s, func(y T) bool { return x == y })
}

// Find returns the first element of s satisfying p, or None.
func Find[T any](s []T, p PredicateFunc[T]) Option[T] {
	for _, x := range s {
		if p(x) {
			return Some(x)
		}
	}
	return None[T]()
}

// UniqueBy returns a new slice keeping only the first occurrence of each
// key, in the original order. Over a most-recent-first sequence this keeps
// the most recent element per key.
//
// Example:
//
//	UniqueBy(events, func(e Event) string { return e.Type + e.Date })
func UniqueBy[T any, K comparable](s []T, key func(T) K) []T {
	seen := make(map[K]bool, len(s))
	out := make([]T, 0, len(s))
	for _, x := range s {
		k := key(x)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, x)
	}
	return out
}

// Take returns a new slice with at most n leading elements of s. n <= 0
// yields an empty slice; n >= len(s) copies all of s.
func Take[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	out := make([]T, n)
	copy(out, s[:n])
	return out
}

// Reversed returns a new slice with the elements of s in reverse order,
// leaving s untouched.
func Reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, x := range s {
		out[len(s)-1-i] = x
	}
	return out
}

// ============================================================================
// Ordered Aggregates
// ============================================================================

// Sum returns the sum of s, zero for an empty sequence.
func Sum[T Number](s []T) T {
	var total T
	for _, x := range s {
		total += x
	}
	return total
}

// Min returns the smallest element of s, or ErrEmptySequence on empty input.
func Min[T constraints.Ordered](s []T) (T, error) {
	return Fold(s, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// Max returns the largest element of s, or ErrEmptySequence on empty input.
func Max[T constraints.Ordered](s []T) (T, error) {
	return Fold(s, func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}
