// Package ndarray provides the buffer & view model that the rest of ndkit
// is built on: N-dimensional, fixed-shape, homogeneous containers and a
// flat-view resolution step that yields a contiguous, row-major, indexable
// range over a backing buffer.
//
// The ndarray package provides:
//
//   - Dense[T], a concrete row-major container that either exclusively owns
//     its backing buffer or is a view: a borrowed buffer reference plus a
//     starting offset and element count, where consecutive logical elements
//     occupy consecutive buffer slots.
//   - NDArray[T], the minimal read surface any array implementation must
//     satisfy to participate in resolution.
//   - FlatView[T] and Resolve, the resolution step itself: aliasing (borrow
//     the buffer, zero allocation) when the array is already contiguous in
//     row-major order, materialized (copy once into a fresh buffer) when it
//     is not.
//
// Resolution guarantee: reading the returned FlatView from index 0 to
// Len()-1 in order yields exactly the array's elements in row-major order,
// regardless of which resolution path was taken.
//
// Arrays are immutable in shape once constructed; only element values may
// mutate. FlatViews are transient — constructed, consumed and discarded
// within a single call.
package ndarray
