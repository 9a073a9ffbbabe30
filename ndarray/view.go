// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Provide FlatView, the resolved read/write-capable handle over a
//     contiguous row-major range of a backing buffer, and Resolve, the
//     copy-vs-no-copy resolution step every ndkit combinator starts with.
//
// Design:
//   - Aliasing path: *Dense[T] is contiguous row-major by construction, so
//     its buffer is borrowed directly — no allocation, and mutations through
//     the FlatView are visible through the source array.
//   - Materialized path: any other NDArray implementation is walked once via
//     AtFlat in row-major order into a fresh owned buffer — mutations do NOT
//     propagate back to the source (documented divergence).
//
// Determinism & Performance:
//   - Resolution is O(1) on the aliasing path and O(n) time/space on the
//     materialized path; reading the result 0..n-1 yields the row-major
//     element sequence either way.

package ndarray

// FlatView is a resolved, contiguous, row-major-ordered, indexable range
// over a backing buffer — either borrowing an existing buffer (aliasing) or
// owning a freshly copied one (materialized). The ownership tag is explicit
// so write-through semantics are a checkable property.
//
// Invariant: off >= 0 && off+n <= len(buf).
// FlatViews are transient: constructed, consumed and discarded within a
// single call; they hold no state across calls.
type FlatView[T any] struct {
	buf   []T  // backing buffer (borrowed or owned)
	off   int  // starting offset into buf
	n     int  // length of the view
	owned bool // true on the materialized path (owns buf)
}

// Len returns the number of elements addressable through the view.
// Complexity: O(1).
func (v *FlatView[T]) Len() int { return v.n }

// Materialized reports whether resolution copied into a fresh buffer (true)
// or borrowed the source array's buffer (false). On the aliasing path,
// writes through the view are visible through the source array.
// Complexity: O(1).
func (v *FlatView[T]) Materialized() bool { return v.owned }

// At reads the i-th element of the view.
// Precondition: 0 <= i < Len(); violation is a programmer error.
// Complexity: O(1).
func (v *FlatView[T]) At(i int) T { return v.buf[v.off+i] }

// Set writes x at the i-th element of the view, with the same precondition
// as At. On the aliasing path the write lands in the shared source buffer.
// Complexity: O(1).
func (v *FlatView[T]) Set(i int, x T) { v.buf[v.off+i] = x }

// Data returns the view's window as a plain slice, sharing storage with the
// view's buffer. This is the fast path used by tight kernels: index k of the
// returned slice is element k of the view.
// Complexity: O(1); no allocation.
func (v *FlatView[T]) Data() []T { return v.buf[v.off : v.off+v.n] }

// Resolve inspects whether a describes a contiguous run, in row-major order,
// over a backing buffer and returns a FlatView plus the total element count.
//
// Behavior:
//   - *Dense[T] (owned or view) is contiguous by construction: the returned
//     FlatView borrows its buffer at its offset. No allocation, no copy.
//   - Any other implementation is materialized: a fresh buffer of n elements
//     is allocated and filled by a single row-major AtFlat walk; the
//     FlatView owns that buffer at offset 0.
//
// Guarantee: reading the FlatView from 0 to n-1 in order yields exactly the
// array's elements in row-major order, regardless of the path taken.
//
// Resolve has no error conditions for well-formed arrays; a nil argument is
// a programmer-error precondition violation, not a runtime failure to
// recover from (public kernels validate nil before resolving).
// Complexity: O(1) aliasing; O(n) time and memory materialized.
func Resolve[T any](a NDArray[T]) (*FlatView[T], int) {
	// Aliasing fast path: Dense exposes its contiguous buffer directly.
	if d, ok := a.(*Dense[T]); ok {
		return &FlatView[T]{buf: d.buf, off: d.off, n: d.n, owned: false}, d.n
	}

	// Materialized path: single row-major walk into a fresh owned buffer.
	n := a.Len()
	buf := make([]T, n)
	for i := 0; i < n; i++ { // fixed order preserves row-major sequence
		buf[i] = a.AtFlat(i)
	}

	return &FlatView[T]{buf: buf, off: 0, n: n, owned: true}, n
}

// ValidateNotNil returns ErrNilArray when a is nil. Public kernels across
// ndkit call this before resolving, mirroring a single centralized validator
// rather than ad-hoc nil checks at each call site.
// Complexity: O(1).
func ValidateNotNil[T any](a NDArray[T]) error {
	if a == nil {
		return ErrNilArray
	}

	return nil
}
