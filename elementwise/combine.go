// SPDX-License-Identifier: MIT
// Package: elementwise
//
// Purpose:
//   - Provide the canonical resolve/allocate/iterate kernels: Combine
//     (binary) and Map (unary). Every specialization in ops.go and the
//     multi-value mapping in mapn.go delegate here or follow this pattern.
//
// Design:
//   - Two-pass discipline: validate (nil + shape) first, then a single
//     element walk. A failed precondition never leaves a partial result.
//   - Inputs are resolved independently; each may take either resolution
//     path, and they need not agree.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 order; O(n) time; one output allocation plus
//     whatever the materialized resolution path requires.

package elementwise

import "github.com/katalvlaran/ndkit/ndarray"

// Operation name constants for unified error wrapping.
const (
	opCombine = "Combine"
	opMap     = "Map"
)

// Combine applies op(a_flat[i], b_flat[i]) for every row-major flat index
// and stores the results into a freshly allocated, exclusively-owned array
// of the caller-chosen element type R with the inputs' shape.
//
// Behavior highlights:
//   - a and b are resolved independently through the flat-view model.
//   - The result aliases neither input; result order matches the row-major
//     traversal of both.
//
// Inputs:
//   - op: binary combining operator; must be side-effect free.
//   - a, b: equal-shaped arrays (element types may differ).
//
// Returns:
//   - *ndarray.Dense[R]: fresh owned result of shape a.Shape().
//
// Errors:
//   - ErrNilArray when either input is nil.
//   - ErrShapeMismatch when a.Shape() != b.Shape().
//
// Determinism:
//   - Fixed flat traversal; stable results.
//
// Complexity:
//   - Time O(n), Space O(n) for the result.
func Combine[A, B, R any](op func(A, B) R, a ndarray.NDArray[A], b ndarray.NDArray[B]) (*ndarray.Dense[R], error) {
	// Stage 1 (Validate): presence of both operands.
	if err := ndarray.ValidateNotNil(a); err != nil {
		return nil, ewErrorf(opCombine, err)
	}
	if err := ndarray.ValidateNotNil(b); err != nil {
		return nil, ewErrorf(opCombine, err)
	}
	// Stage 1 (Validate): shapes must agree exactly before any element is read.
	if !a.Shape().Equal(b.Shape()) {
		return nil, ewErrorf(opCombine, ErrShapeMismatch)
	}

	// Stage 2 (Resolve): each input independently; paths need not agree.
	fa, n := ndarray.Resolve(a)
	fb, _ := ndarray.Resolve(b)

	// Stage 2 (Allocate): fresh owned result with the shared shape.
	out, err := ndarray.NewDense[R](a.Shape()...)
	if err != nil {
		return nil, ewErrorf(opCombine, err)
	}

	// Stage 3 (Iterate): one pass over the flat windows.
	da, db := fa.Data(), fb.Data()
	fo, _ := ndarray.Resolve[R](out) // aliasing by construction
	do := fo.Data()
	for i := 0; i < n; i++ {
		do[i] = op(da[i], db[i])
	}

	return out, nil
}

// Map applies op(a_flat[i]) for every row-major flat index into a freshly
// allocated array of element type R — the unary variant of Combine, used
// for scalar broadcasts, reciprocal and negation.
//
// Errors: ErrNilArray when a is nil.
// Complexity: Time O(n), Space O(n) for the result.
func Map[A, R any](op func(A) R, a ndarray.NDArray[A]) (*ndarray.Dense[R], error) {
	// Stage 1 (Validate): presence.
	if err := ndarray.ValidateNotNil(a); err != nil {
		return nil, ewErrorf(opMap, err)
	}

	// Stage 2 (Resolve + Allocate).
	fa, n := ndarray.Resolve(a)
	out, err := ndarray.NewDense[R](a.Shape()...)
	if err != nil {
		return nil, ewErrorf(opMap, err)
	}

	// Stage 3 (Iterate): single pass.
	da := fa.Data()
	fo, _ := ndarray.Resolve[R](out)
	do := fo.Data()
	for i := 0; i < n; i++ {
		do[i] = op(da[i])
	}

	return out, nil
}
