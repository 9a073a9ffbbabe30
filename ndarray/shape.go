// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Define Shape, the ordered sequence of non-negative dimension sizes that
//     every array carries, together with the row-major index arithmetic used
//     by Dense and by the resolution step.
//
// Determinism & Performance:
//   - All helpers are pure, allocation-free except Clone, and O(rank).
//   - Row-major convention throughout: the LAST dimension varies fastest.

package ndarray

// Shape is an ordered sequence of non-negative dimension sizes.
// A Shape of rank >= 1 is required everywhere in this library; rank-0
// (scalar) arrays are out of scope.
type Shape []int

// Rank returns the number of dimensions.
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Elems returns the total element count, i.e. the product of all dimension
// sizes. A zero dimension yields 0.
// Complexity: O(rank).
func (s Shape) Elems() int {
	n := 1 // multiplicative identity
	for _, d := range s {
		n *= d // accumulate product in fixed order
	}

	return n
}

// Equal reports whether two shapes have identical rank and dimension sizes.
// Complexity: O(rank).
func (s Shape) Equal(t Shape) bool {
	// Different ranks can never be equal.
	if len(s) != len(t) {
		return false
	}
	// Compare dimension-by-dimension in fixed order.
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the shape.
// Complexity: O(rank) time and memory.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)

	return c
}

// Validate returns ErrBadShape unless the shape has rank >= 1 and every
// dimension size is non-negative. Zero-sized dimensions are legal (empty
// arrays are representable; reductions over them surface their own errors).
// Complexity: O(rank).
func (s Shape) Validate() error {
	// Rank-0 shapes are rejected; the library models rank >= 1 only.
	if len(s) == 0 {
		return ErrBadShape
	}
	// Negative dimension sizes are nonsensical.
	for _, d := range s {
		if d < 0 {
			return ErrBadShape
		}
	}

	return nil
}

// flatIndex computes the row-major flat offset of the multi-index ix, or
// ErrOutOfRange when ix has wrong rank or any coordinate is out of bounds.
// Row-major: the last dimension varies fastest.
// Complexity: O(rank).
func (s Shape) flatIndex(ix []int) (int, error) {
	// A multi-index must address exactly one coordinate per dimension.
	if len(ix) != len(s) {
		return 0, ErrOutOfRange
	}
	flat := 0
	for k, i := range ix {
		// Bounds check per coordinate.
		if i < 0 || i >= s[k] {
			return 0, ErrOutOfRange
		}
		flat = flat*s[k] + i // Horner accumulation in row-major order
	}

	return flat, nil
}
