// Package ndkit is a small generic toolkit for reducing, combining and
// finding extrema over N-dimensional numeric arrays, including arrays that
// are views (offset/length windows) over a shared backing buffer.
//
// 🚀 What is ndkit?
//
//	A deterministic, allocation-aware library built around two mechanisms:
//		• Flat-view resolution: turn any array into a contiguous logical
//		  sequence (offset + length into a backing buffer) without copying
//		  when the array is already contiguous, copying only when it is not.
//		• A generic combinator core on top of that flat view: a
//		  missing-tolerant fold, a shape-checked elementwise combiner,
//		  a single-pass extrema-with-positions scan, and an n-ary zip-map.
//
// ✨ Why choose ndkit?
//
//   - Allocation-aware – the aliasing resolution path never copies
//   - Rock-solid guarantees – sentinel errors, errors.Is everywhere
//   - Pure Go – no cgo, no hidden deps
//   - Generic – element types and result types are caller-chosen
//
// Under the hood, everything is organized under six subpackages:
//
//	ndarray/     — buffer & view model: Dense arrays, views, FlatView, Resolve
//	fold/        — reduction engine: Reduce, Maybe, Sum/Prod/Min/Max/Mean/Extent
//	elementwise/ — Combine, Map, MapN and arithmetic specializations
//	extrema/     — single-pass extrema with tie positions under a weak relation
//	zipmap/      — elementwise application across equal-length sequences
//	vector/      — leaf utilities: dot product, outer product
//
// Quick example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	s, _ := fold.Sum[float64](a)       // 10
//	m, n, _ := fold.Mean[float64](a)   // 2.5, 4
//	best, _ := extrema.Max[float64](a) // value 4, positions [3]
//	_, _, _, _ = s, m, n, best
//
// Every component that touches raw elements first asks the view model for a
// flat, indexable range, then walks that range once. Control flow is
// single-pass, iterative, with no recursion and no concurrency.
package ndkit
