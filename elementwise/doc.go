// Package elementwise provides the shape-checked elementwise combiners of
// ndkit: a generic binary zip-map over two equal-shaped arrays, a unary map,
// a multi-value mapping that appends a trailing dimension, and the usual
// arithmetic specializations.
//
// The elementwise package provides:
//
//   - Combine — op(a[i], b[i]) into a freshly allocated array of a
//     caller-chosen element type (inputs may combine into a different type,
//     e.g. integer inputs into a float64 result).
//   - Map — the unary variant, used for scalar broadcasts, reciprocal and
//     negation.
//   - MapN — multi-value mapping: every element expands to exactly m values
//     stored along one trailing dimension of size m.
//   - Add, Sub, Mul, Div, AddScalar, Scale, Recip, Neg, SubFromScalar —
//     thin call-sites of Combine/Map with float64 results (use Combine/Map
//     directly to choose another result type).
//
// Every combiner resolves its inputs through the flat-view model first
// (each input independently takes whichever resolution path applies), then
// walks index 0..n-1 once. Results never alias their inputs. Shape
// disagreement fails with ErrShapeMismatch before any element is touched.
package elementwise
