// SPDX-License-Identifier: MIT
// Package: extrema
//
// Purpose:
//   - Provide the single-pass extrema-with-positions scan driven by a
//     caller-supplied (possibly non-strict) ordering relation, plus the
//     array-level wrapper and numeric convenience specializations.
//
// Design:
//   - The engine works purely in index space (Find); array access is
//     adapted through a key function, so the same loop serves raw slices,
//     resolved flat views and any projection of the elements.
//   - Ties accumulate; a strictly better value discards all prior ties.
//
// Determinism & Performance:
//   - One pass, fixed 0..n-1 order, O(n) relation evaluations (at most two
//     per index), O(t) space for t ties.

package extrema

import (
	"math"

	"github.com/katalvlaran/ndkit/ndarray"
)

// Operation name constants for unified error wrapping.
const (
	opFind      = "Find"
	opFindArray = "FindArray"
	opMax       = "Max"
	opMin       = "Min"
	opMaxAbs    = "MaxAbs"
)

// Result is an extremum record: the extremal value and the flat indices
// attaining it. Positions are in reverse discovery order — the most
// recently confirmed tie first, the oldest found last. A Result is created
// fresh per call and shares nothing with the scanned sequence beyond the
// index values.
type Result[P any] struct {
	Value     P     // the extremal value under the supplied relation
	Positions []int // indices attaining Value, newest tie first
}

// Find scans indices 0..n-1 once and returns the extremal key value plus
// all positions attaining it under the weak relation noBetter.
//
// Relation contract:
//   - noBetter(a, b) is true when a is "no better than" b (e.g. <= finds a
//     maximum, >= finds a minimum).
//   - a and b are equivalent iff noBetter(a,b) && noBetter(b,a); the
//     relation need not be a strict total order.
//
// Scan rule per index i with value e (best = best-so-far):
//   - noBetter(best, e) false: e is worse — skip, no state change.
//   - noBetter(best, e) && noBetter(e, best): equivalent — i joins the ties.
//   - noBetter(best, e) only: strictly better — best = e, ties reset to [i].
//
// Inputs:
//   - n: scan length.
//   - key: i -> value at index i; must be side-effect free.
//   - noBetter: the weak ordering relation.
//
// Returns:
//   - Result[P]: extremal value + positions in reverse discovery order.
//
// Errors:
//   - ErrEmptyInput when n <= 0 (explicit decision for the zero-length
//     boundary; see package documentation).
//
// Determinism:
//   - Fixed scan order; stable value and position list.
//
// Complexity:
//   - Time O(n) with <= 2 relation calls per index; Space O(t) for t ties.
func Find[P any](n int, key func(int) P, noBetter func(P, P) bool) (Result[P], error) {
	// Stage 1 (Validate): an extremum over nothing is undefined.
	if n <= 0 {
		return Result[P]{}, extremaErrorf(opFind, ErrEmptyInput)
	}

	// Stage 2 (Seed): the first element becomes the initial best and its
	// index seeds the position list.
	best := key(0)
	pos := []int{0}

	// Stage 3 (Scan): single pass over the remaining indices.
	for i := 1; i < n; i++ {
		e := key(i)
		// e worse than best: skip without touching state.
		if !noBetter(best, e) {
			continue
		}
		if noBetter(e, best) {
			// Equivalent to the current best: the tie accumulates.
			pos = append(pos, i)
		} else {
			// Strictly better: replace best, discard all prior ties.
			best = e
			pos = append(pos[:0], i)
		}
	}

	// Stage 4 (Finalize): the contract is reverse discovery order (newest
	// tie first), so flip the accumulation order in place.
	for l, r := 0, len(pos)-1; l < r; l, r = l+1, r-1 {
		pos[l], pos[r] = pos[r], pos[l]
	}

	return Result[P]{Value: best, Positions: pos}, nil
}

// FindArray resolves a through the flat-view model and runs Find over its
// row-major flat indices, projecting each element through key. Positions in
// the Result are flat (row-major) indices into a.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptyInput when a holds no elements.
//
// Complexity: O(n) plus the cost of resolution.
func FindArray[E, P any](a ndarray.NDArray[E], key func(E) P, noBetter func(P, P) bool) (Result[P], error) {
	// Validate presence via the centralized validator.
	if err := ndarray.ValidateNotNil(a); err != nil {
		return Result[P]{}, extremaErrorf(opFindArray, err)
	}

	// Resolve once; the engine then reads the contiguous window directly.
	fv, n := ndarray.Resolve(a)
	data := fv.Data()

	res, err := Find(n, func(i int) P { return key(data[i]) }, noBetter)
	if err != nil {
		return res, extremaErrorf(opFindArray, err)
	}

	return res, nil
}

// Max returns the largest element of a and all flat positions attaining it
// (weak relation <=).
// Errors: ErrNilArray; ErrEmptyInput on an empty array.
// Complexity: O(n).
func Max[E ndarray.Number](a ndarray.NDArray[E]) (Result[E], error) {
	res, err := FindArray(a, func(e E) E { return e },
		func(x, y E) bool { return x <= y })
	if err != nil {
		return res, extremaErrorf(opMax, err)
	}

	return res, nil
}

// Min returns the smallest element of a and all flat positions attaining it
// (weak relation >=).
// Errors: ErrNilArray; ErrEmptyInput on an empty array.
// Complexity: O(n).
func Min[E ndarray.Number](a ndarray.NDArray[E]) (Result[E], error) {
	res, err := FindArray(a, func(e E) E { return e },
		func(x, y E) bool { return x >= y })
	if err != nil {
		return res, extremaErrorf(opMin, err)
	}

	return res, nil
}

// MaxAbs returns the maximum absolute value over a — the same engine with
// key = |x| and relation <=. Only the value is surfaced; the engine still
// computes the tied positions internally.
// Errors: ErrNilArray; ErrEmptyInput on an empty array.
// Complexity: O(n).
func MaxAbs[E ndarray.Number](a ndarray.NDArray[E]) (float64, error) {
	res, err := FindArray(a, func(e E) float64 { return math.Abs(float64(e)) },
		func(x, y float64) bool { return x <= y })
	if err != nil {
		return 0, extremaErrorf(opMaxAbs, err)
	}

	return res.Value, nil
}
