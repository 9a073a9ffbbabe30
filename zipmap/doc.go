// Package zipmap applies a combining function elementwise across several
// equal-length flat sequences, positionally: for each index i the function
// receives the i-th element of every input and its result lands at index i
// of the output.
//
// The zipmap package provides:
//
//   - Apply, the n-ary combinator over a slice of input sequences with an
//     explicit combining closure indexed by position.
//   - Target, an explicit output selector: NewBuffer() allocates a fresh
//     output sequence; WriteInto(i) writes results back into input i in
//     place (aliasing is intentional and caller-requested).
//
// In-place hazard (documented, not a defect): with WriteInto the engine
// overwrites the target's element at index i immediately after computing
// index i. A combining function only ever reads index i while index i is
// written, so the elementwise contract is safe — but a function that peeks
// at other indices of the target would observe already-overwritten values.
package zipmap
