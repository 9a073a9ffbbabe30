// SPDX-License-Identifier: MIT
// Package: fold
//
// Purpose:
//   - Provide the standard aggregates as direct specializations of the
//     reduction engine: Sum, Prod, Min, Max, Mean, CountIf and Extent.
//   - No aggregate re-implements the element walk; each one picks an
//     operator (and possibly a key projection) and delegates.
//
// Determinism & Performance:
//   - Every aggregate is a single engine pass, O(n) time; Mean is two engine
//     passes (sum, then present-count), both deterministic.

package fold

import "github.com/katalvlaran/ndkit/ndarray"

// Operation name constants for unified error wrapping.
const (
	opSum     = "Sum"
	opProd    = "Prod"
	opMin     = "Min"
	opMax     = "Max"
	opMean    = "Mean"
	opCountIf = "CountIf"
	opExtent  = "Extent"
)

// Sum returns the sum of all present elements of a.
// Specialization: Reduce with op = addition.
// Errors: ErrNilArray; ErrEmptySequence on empty/all-absent input.
// Complexity: O(n).
func Sum[E ndarray.Number](a ndarray.NDArray[E], opts ...Option[E]) (E, error) {
	v, err := Reduce(func(x, y E) E { return x + y }, a, opts...)
	if err != nil {
		return v, foldErrorf(opSum, err)
	}

	return v, nil
}

// Prod returns the product of all present elements of a.
// Specialization: Reduce with op = multiplication.
// Errors: ErrNilArray; ErrEmptySequence on empty/all-absent input.
// Complexity: O(n).
func Prod[E ndarray.Number](a ndarray.NDArray[E], opts ...Option[E]) (E, error) {
	v, err := Reduce(func(x, y E) E { return x * y }, a, opts...)
	if err != nil {
		return v, foldErrorf(opProd, err)
	}

	return v, nil
}

// Min returns the smallest present element of a.
// Specialization: Reduce with op = binary minimum.
// Errors: ErrNilArray; ErrEmptySequence on empty/all-absent input.
// Complexity: O(n).
func Min[E ndarray.Number](a ndarray.NDArray[E], opts ...Option[E]) (E, error) {
	v, err := Reduce(func(x, y E) E {
		if y < x {
			return y
		}
		return x
	}, a, opts...)
	if err != nil {
		return v, foldErrorf(opMin, err)
	}

	return v, nil
}

// Max returns the largest present element of a.
// Specialization: Reduce with op = binary maximum.
// Errors: ErrNilArray; ErrEmptySequence on empty/all-absent input.
// Complexity: O(n).
func Max[E ndarray.Number](a ndarray.NDArray[E], opts ...Option[E]) (E, error) {
	v, err := Reduce(func(x, y E) E {
		if y > x {
			return y
		}
		return x
	}, a, opts...)
	if err != nil {
		return v, foldErrorf(opMax, err)
	}

	return v, nil
}

// Mean returns the arithmetic mean of the present elements of a, together
// with the present count the mean was taken over. Without WithMissing the
// count is simply the element count; with it, absent elements contribute to
// neither the sum nor the count.
//
// Returns:
//   - float64: sum of present elements divided by present count.
//   - int: the present count.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptySequence when no element is present (division undefined).
//
// Complexity: O(n) — two engine passes (sum, then count).
func Mean[E ndarray.Number](a ndarray.NDArray[E], opts ...Option[E]) (float64, int, error) {
	// Sum of present elements, accumulated in float64 via a key projection.
	sum, err := ReduceKeyed(func(x, y float64) float64 { return x + y },
		func(e E) float64 { return float64(e) }, a, opts...)
	if err != nil {
		return 0, 0, foldErrorf(opMean, err)
	}

	// Present count: fold of addition over a constant-1 key. The engine
	// skips absent elements, so this is exactly the divisor we need.
	cnt, err := ReduceKeyed(func(x, y int) int { return x + y },
		func(E) int { return 1 }, a, opts...)
	if err != nil {
		return 0, 0, foldErrorf(opMean, err)
	}

	return sum / float64(cnt), cnt, nil
}

// CountIf returns the number of present elements satisfying pred — a fold
// of addition over a 0/1 key projection. An empty (or all-absent) input
// counts zero matches; this aggregate never surfaces ErrEmptySequence.
//
// Errors: ErrNilArray only.
// Complexity: O(n).
func CountIf[E any](pred func(E) bool, a ndarray.NDArray[E], opts ...Option[E]) (int, error) {
	if err := ndarray.ValidateNotNil(a); err != nil {
		return 0, foldErrorf(opCountIf, err)
	}

	// Seed with 0 so the empty fold has a defined result.
	m := reduceFlat(func(x, y int) int { return x + y }, func(e E) int {
		if pred(e) {
			return 1
		}
		return 0
	}, a, gatherOptions(opts...), Some(0))

	return m.val, nil
}

// MinMax is the accumulator of Extent: a (Min, Max) pair that is a pair
// from the very first element on — seeded as (first, first) — so no
// scalar-vs-pair ambiguity ever arises mid-fold.
type MinMax[E ndarray.Number] struct {
	Min E // smallest present element seen
	Max E // largest present element seen
}

// Extent returns the running (min, max) of the present elements of a as a
// single fold: the key projects every element e to the pair (e, e) and the
// operator merges pairs side-by-side. A single-element input yields (v, v).
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptySequence when no element is present.
//
// Complexity: O(n), one engine pass.
func Extent[E ndarray.Number](a ndarray.NDArray[E], opts ...Option[E]) (MinMax[E], error) {
	mm, err := ReduceKeyed(func(p, q MinMax[E]) MinMax[E] {
		// Merge each side independently; both operands are honest pairs.
		if q.Min < p.Min {
			p.Min = q.Min
		}
		if q.Max > p.Max {
			p.Max = q.Max
		}
		return p
	}, func(e E) MinMax[E] { return MinMax[E]{Min: e, Max: e} }, a, opts...)
	if err != nil {
		return mm, foldErrorf(opExtent, err)
	}

	return mm, nil
}
