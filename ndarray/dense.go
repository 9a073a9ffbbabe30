// Package ndarray: Dense is the concrete, row-major implementation of the
// NDArray surface, storing elements in a flat slice for performance and
// cache friendliness. A Dense either exclusively owns its backing buffer or
// is a view: a borrowed reference into a parent's buffer at a starting
// offset, with consecutive logical elements in consecutive buffer slots.

package ndarray

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a row-major N-dimensional array of T values.
// shape is immutable after construction; buf holds the backing storage,
// off is the starting offset into buf, n the total element count, and
// owned is the explicit ownership tag: true when the Dense exclusively owns
// buf, false when it borrows a window of another array's buffer.
//
// Invariant: off >= 0 && off+n <= len(buf) && n == shape.Elems().
// The ownership tag makes write-through semantics an explicit, checkable
// property rather than incidental aliasing.
type Dense[T any] struct {
	shape Shape // dimension sizes, row-major, immutable
	buf   []T   // flat backing storage (owned or borrowed)
	off   int   // starting offset into buf
	n     int   // total element count == shape.Elems()
	owned bool  // ownership tag: owns buf vs borrows a window
}

// NewDense creates an owned, zero-initialized Dense with the given shape.
// Stage 1 (Validate): shape must have rank >= 1 and non-negative dims.
// Stage 2 (Prepare): allocate flat backing slice of Elems() elements.
// Stage 3 (Finalize): return the owned Dense or ErrBadShape.
// Complexity: O(n) time and memory for n total elements.
func NewDense[T any](shape ...int) (*Dense[T], error) {
	s := Shape(shape)
	// Validate shape metadata before allocating.
	if err := s.Validate(); err != nil {
		return nil, denseErrorf("New", err)
	}
	n := s.Elems()

	// Allocate the flat buffer; runtime zero-init gives the neutral fill.
	return &Dense[T]{shape: s.Clone(), buf: make([]T, n), off: 0, n: n, owned: true}, nil
}

// FromSlice creates an owned Dense with the given shape, copying data into a
// fresh buffer (the input slice is never retained).
// Stage 1 (Validate): shape valid and len(data) == Elems().
// Stage 2 (Prepare): allocate and copy.
// Stage 3 (Finalize): return the owned Dense.
// Complexity: O(n) time and memory.
func FromSlice[T any](data []T, shape ...int) (*Dense[T], error) {
	s := Shape(shape)
	// Validate shape metadata first.
	if err := s.Validate(); err != nil {
		return nil, denseErrorf("FromSlice", err)
	}
	// The flat payload must fill the shape exactly.
	if len(data) != s.Elems() {
		return nil, denseErrorf("FromSlice", ErrBadShape)
	}
	// Copy into an exclusively-owned buffer.
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{shape: s.Clone(), buf: buf, off: 0, n: len(data), owned: true}, nil
}

// Shape returns the array's dimension sizes. Callers must not mutate it.
// Complexity: O(1).
func (d *Dense[T]) Shape() Shape { return d.shape }

// Len returns the total element count.
// Complexity: O(1).
func (d *Dense[T]) Len() int { return d.n }

// IsView reports whether this Dense borrows its buffer from a parent array
// (true) or exclusively owns it (false).
// Complexity: O(1).
func (d *Dense[T]) IsView() bool { return !d.owned }

// AtFlat reads the element at row-major flat index i.
// Precondition: 0 <= i < Len(); violation is a programmer error (panics via
// the runtime bounds check on the backing slice).
// Complexity: O(1).
func (d *Dense[T]) AtFlat(i int) T { return d.buf[d.off+i] }

// SetFlat writes v at row-major flat index i, with the same precondition as
// AtFlat. For a view, the write lands in the shared parent buffer.
// Complexity: O(1).
func (d *Dense[T]) SetFlat(i int, v T) { d.buf[d.off+i] = v }

// At retrieves the element at the multi-index ix.
// Stage 1 (Validate): bounds check via Shape.flatIndex.
// Stage 2 (Execute): read from the flat buffer at off+flat.
// Returns ErrOutOfRange on wrong rank or out-of-bounds coordinates.
// Complexity: O(rank).
func (d *Dense[T]) At(ix ...int) (T, error) {
	flat, err := d.shape.flatIndex(ix)
	if err != nil {
		var zero T
		return zero, denseErrorf("At", err)
	}

	return d.buf[d.off+flat], nil
}

// Set assigns v at the multi-index ix.
// Returns ErrOutOfRange on wrong rank or out-of-bounds coordinates.
// Complexity: O(rank).
func (d *Dense[T]) Set(v T, ix ...int) error {
	flat, err := d.shape.flatIndex(ix)
	if err != nil {
		return denseErrorf("Set", err)
	}
	d.buf[d.off+flat] = v

	return nil
}

// View returns a borrowing Dense over the same backing buffer, starting at
// logical offset off (relative to this array's own start) and reshaped to
// the given shape. The view does not own the buffer: element writes through
// the view are visible through the parent and through any other view over
// the same region.
// Stage 1 (Validate): shape valid; window fits inside this array's region.
// Stage 2 (Finalize): return the borrowing Dense (no allocation, no copy).
// Errors: ErrBadShape on invalid shape; ErrViewOutOfBounds when
// off < 0 or off+Elems() exceeds this array's element count.
// Complexity: O(rank).
func (d *Dense[T]) View(off int, shape ...int) (*Dense[T], error) {
	s := Shape(shape)
	// Validate the requested shape metadata.
	if err := s.Validate(); err != nil {
		return nil, denseErrorf("View", err)
	}
	n := s.Elems()
	// The window must lie entirely inside this array's own region.
	if off < 0 || off+n > d.n {
		return nil, denseErrorf("View", ErrViewOutOfBounds)
	}

	// Borrow the buffer: same storage, shifted offset, explicit non-ownership.
	return &Dense[T]{shape: s.Clone(), buf: d.buf, off: d.off + off, n: n, owned: false}, nil
}

// Clone returns a deep, exclusively-owned copy of the array (views included:
// the clone detaches from the shared buffer).
// Complexity: O(n) time and memory.
func (d *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, d.n)
	copy(buf, d.buf[d.off:d.off+d.n])

	return &Dense[T]{shape: d.shape.Clone(), buf: buf, off: 0, n: d.n, owned: true}
}

// String implements fmt.Stringer for easy debugging: shape plus the flat
// row-major element sequence.
// Complexity: O(n).
func (d *Dense[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense%v", []int(d.shape))
	b.WriteByte('[')
	for i := 0; i < d.n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", d.buf[d.off+i])
	}
	b.WriteByte(']')

	return b.String()
}
