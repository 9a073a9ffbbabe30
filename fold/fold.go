// SPDX-License-Identifier: MIT
// Package: fold
//
// Purpose:
//   - Provide the canonical left-to-right fold over the row-major flat view
//     of an array, with an optional key projection and missing-data mode.
//   - Keep the tight loop in exactly one place (reduceFlat); every public
//     entry point and every aggregate delegates to it.
//
// Design:
//   - Arrays are resolved through ndarray.Resolve first, so the engine only
//     ever walks a contiguous flat range — one pass, fixed 0..n-1 order.
//   - Absence is expressed through a predicate (WithMissing) and through the
//     Maybe accumulator, never through sentinel element values.
//
// Determinism & Performance:
//   - Single deterministic pass; O(n) time, O(1) extra space on the aliasing
//     resolution path (O(n) when the source must be materialized).

package fold

import "github.com/katalvlaran/ndkit/ndarray"

// Operation name constants for unified error wrapping.
const (
	opReduce      = "Reduce"
	opReduceInit  = "ReduceInit"
	opReduceKeyed = "ReduceKeyed"
	opReduceMaybe = "ReduceMaybe"
)

// reduceFlat folds op left-to-right over key(element) for every present
// element of a's flat view, starting from seed.
//
// Combining rule (missing-data mode): absent elements are skipped, which is
// equivalent to the documented identity behavior — both present → op;
// exactly one present → that one (op NOT invoked); neither → absent seed.
//
// Precondition: a != nil (validated by public wrappers).
// Complexity: O(n) time; no allocation beyond resolution.
func reduceFlat[E, R any](op func(R, R) R, key func(E) R, a ndarray.NDArray[E], cfg config[E], seed Maybe[R]) Maybe[R] {
	// Stage 1 (Resolve): obtain the contiguous row-major range once.
	fv, n := ndarray.Resolve(a)
	data := fv.Data() // flat window; index k is element k

	// Stage 2 (Fold): single pass in fixed 0..n-1 order.
	acc := seed
	for i := 0; i < n; i++ {
		e := data[i]
		// Absent elements act as fold identities: skip without invoking op.
		if cfg.absent != nil && cfg.absent(e) {
			continue
		}
		v := key(e)
		if acc.ok {
			acc = Some(op(acc.val, v)) // both operands present: combine
		} else {
			acc = Some(v) // first present element seeds the accumulator
		}
	}

	return acc
}

// Reduce folds op left-to-right over the row-major elements of a.
//
// Behavior highlights:
//   - The first present element seeds the accumulator; op is applied to
//     (accumulator, element) for every subsequent present element.
//   - With WithMissing, absent elements act as identities (op not invoked).
//
// Inputs:
//   - op: binary combining operator; must be side-effect free.
//   - a:  array of rank >= 1.
//   - opts: optional WithMissing.
//
// Returns:
//   - E: the fold result.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptySequence when no element is present and no seed exists.
//
// Determinism:
//   - Fixed 0..n-1 flat order; stable results.
//
// Complexity:
//   - Time O(n), Space O(1) beyond resolution.
func Reduce[E any](op func(E, E) E, a ndarray.NDArray[E], opts ...Option[E]) (E, error) {
	var zero E
	// Validate presence via the centralized validator.
	if err := ndarray.ValidateNotNil(a); err != nil {
		return zero, foldErrorf(opReduce, err)
	}

	// Delegate to the canonical engine with an identity key and no seed.
	m := reduceFlat(op, func(e E) E { return e }, a, gatherOptions(opts...), None[E]())
	if !m.ok {
		return zero, foldErrorf(opReduce, ErrEmptySequence)
	}

	return m.val, nil
}

// ReduceInit folds op over a starting from the explicit initial value init.
// Because a seed always exists, empty and all-absent inputs yield init
// rather than an error.
//
// Errors: ErrNilArray only.
// Complexity: O(n).
func ReduceInit[E any](op func(E, E) E, init E, a ndarray.NDArray[E], opts ...Option[E]) (E, error) {
	var zero E
	if err := ndarray.ValidateNotNil(a); err != nil {
		return zero, foldErrorf(opReduceInit, err)
	}

	m := reduceFlat(op, func(e E) E { return e }, a, gatherOptions(opts...), Some(init))

	return m.val, nil
}

// ReduceKeyed folds op over key(element) for every present element — the
// projected form of Reduce, where the accumulator type R may differ from the
// element type E (e.g. integer elements folded as float64, or projected
// into a (min,max) pair).
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptySequence when no element is present.
//
// Complexity: O(n).
func ReduceKeyed[E, R any](op func(R, R) R, key func(E) R, a ndarray.NDArray[E], opts ...Option[E]) (R, error) {
	var zero R
	if err := ndarray.ValidateNotNil(a); err != nil {
		return zero, foldErrorf(opReduceKeyed, err)
	}

	m := reduceFlat(op, key, a, gatherOptions(opts...), None[R]())
	if !m.ok {
		return zero, foldErrorf(opReduceKeyed, ErrEmptySequence)
	}

	return m.val, nil
}

// ReduceMaybe is Reduce with absence as a value: an empty or all-absent
// input yields None rather than ErrEmptySequence, so callers that treat
// "no data" as a legitimate outcome need no error branch.
//
// Errors: ErrNilArray only.
// Complexity: O(n).
func ReduceMaybe[E any](op func(E, E) E, a ndarray.NDArray[E], opts ...Option[E]) (Maybe[E], error) {
	if err := ndarray.ValidateNotNil(a); err != nil {
		return None[E](), foldErrorf(opReduceMaybe, err)
	}

	return reduceFlat(op, func(e E) E { return e }, a, gatherOptions(opts...), None[E]()), nil
}
