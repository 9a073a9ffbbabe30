// SPDX-License-Identifier: MIT

// Package ndarray: the NDArray read surface and numeric constraint.
// NDArray is the uniform abstraction every combinator in ndkit accepts;
// Dense is the canonical implementation that unlocks the zero-copy
// resolution fast path (see view.go).

package ndarray

// NDArray is the minimal read surface of an N-dimensional, fixed-shape,
// homogeneous container. Implementations other than *Dense[T] are resolved
// through the materialized (copying) path, mirroring how a generic At-based
// fallback complements a flat-buffer fast path.
//
// Contract:
//   - Shape() is immutable for the lifetime of the value.
//   - Len() == Shape().Elems().
//   - AtFlat(i) reads the i-th element in row-major order; i is a
//     precondition (0 <= i < Len()), violation is a programmer error and
//     implementations are free to panic.
type NDArray[T any] interface {
	// Shape returns the array's dimension sizes. Callers must not mutate it.
	// Complexity: O(1).
	Shape() Shape

	// Len returns the total element count.
	// Complexity: O(1).
	Len() int

	// AtFlat reads the element at row-major flat index i.
	// Complexity: O(1) expected; implementations may be slower.
	AtFlat(i int) T
}

// Number is the element constraint for the arithmetic specializations and
// aggregates. The generic combinators (Combine, Map, Reduce, Find) do not
// require it — their operators carry the semantics.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
