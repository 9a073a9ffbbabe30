// SPDX-License-Identifier: MIT
// Package: elementwise
//
// Purpose:
//   - Provide MapN, the multi-value mapping: each element expands to exactly
//     m values, stored along one trailing dimension of size m appended to
//     the input's shape. The per-element arity is validated at every call.

package elementwise

import "github.com/katalvlaran/ndkit/ndarray"

const opMapN = "MapN"

// MapN applies fn to every row-major element of a and stores the m returned
// values contiguously along a trailing dimension: the result has shape
// a.Shape() + [m], so result_flat[i*m+j] is the j-th value of element i.
//
// Behavior highlights:
//   - fn must yield exactly m values for EVERY element; the length of each
//     returned slice is checked and a disagreement aborts the call.
//
// Inputs:
//   - fn: element -> slice of exactly m values; must be side-effect free.
//   - a:  input array of rank >= 1.
//   - m:  declared number of values per element (>= 1).
//
// Returns:
//   - *ndarray.Dense[R]: fresh owned result of shape a.Shape() + [m].
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrBadShape when m < 1.
//   - ErrArityMismatch when fn returns len != m for any element.
//
// Determinism:
//   - Fixed flat traversal; stable layout.
//
// Complexity:
//   - Time O(n*m), Space O(n*m) for the result.
func MapN[A, R any](fn func(A) []R, a ndarray.NDArray[A], m int) (*ndarray.Dense[R], error) {
	// Stage 1 (Validate): presence and a sane trailing dimension.
	if err := ndarray.ValidateNotNil(a); err != nil {
		return nil, ewErrorf(opMapN, err)
	}
	if m < 1 {
		return nil, ewErrorf(opMapN, ndarray.ErrBadShape)
	}

	// Stage 2 (Resolve + Allocate): shape grows by one trailing dimension.
	fa, n := ndarray.Resolve(a)
	shape := append(a.Shape().Clone(), m)
	out, err := ndarray.NewDense[R](shape...)
	if err != nil {
		return nil, ewErrorf(opMapN, err)
	}

	// Stage 3 (Iterate): one pass; arity checked per element.
	da := fa.Data()
	fo, _ := ndarray.Resolve[R](out)
	do := fo.Data()
	for i := 0; i < n; i++ {
		vals := fn(da[i])
		if len(vals) != m {
			return nil, ewErrorf(opMapN, ErrArityMismatch)
		}
		copy(do[i*m:(i+1)*m], vals)
	}

	return out, nil
}
