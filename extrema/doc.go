// Package extrema finds the extremal value of a sequence together with ALL
// positions attaining it, in a single pass, under a caller-supplied weak
// ordering relation.
//
// The extrema package provides:
//
//   - Find, the index-space engine: scan 0..n-1 once, keep the best value
//     seen so far plus every index tied with it.
//   - FindArray, the array-level wrapper that resolves any NDArray through
//     the flat-view model and adapts an element key function.
//   - Max, Min and MaxAbs, convenience specializations for the numeric
//     orderings everybody wants.
//
// The relation noBetter(a, b) must return true when a is "no better than" b
// under the ordering being searched for (e.g. <= to find a maximum). Two
// values are equivalent iff the relation holds in both directions — it need
// not be a strict total order.
//
// Positions are returned in reverse discovery order (most recently
// confirmed tie first); callers needing discovery order must reverse the
// slice themselves. This is a documented contract, not a bug.
package extrema
