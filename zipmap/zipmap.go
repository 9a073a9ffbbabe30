// SPDX-License-Identifier: MIT
// Package: zipmap
//
// Purpose:
//   - Provide the n-ary, equal-length, positional zip-map: a higher-order
//     function over a slice of input sequences and an explicit combining
//     closure, with the output destination selected by an explicit Target
//     value rather than by syntactic identification of an input name.
//
// Determinism & Performance:
//   - Two passes: length validation, then a single fixed 0..n-1 element
//     walk. O(n*k) time for k sequences; one output allocation with
//     NewBuffer, zero with WriteInto.

package zipmap

const opApply = "Apply"

// Target selects where Apply stores its results. The zero value is
// NewBuffer (allocate a fresh output sequence). Construct via NewBuffer or
// WriteInto only.
type Target struct {
	inPlace bool // write back into one of the inputs
	index   int  // which input, when inPlace
}

// NewBuffer returns the Target that allocates a fresh output sequence.
// Complexity: O(1).
func NewBuffer() Target { return Target{} }

// WriteInto returns the Target that writes results back into input i in
// place. Aliasing is intentional and caller-requested; see the package
// documentation for the in-place read-after-overwrite hazard.
// Complexity: O(1).
func WriteInto(i int) Target { return Target{inPlace: true, index: i} }

// Apply evaluates fn positionally across the input sequences: for each
// index i it gathers the i-th element of every input into args (in input
// order) and stores fn(args) at index i of the output.
//
// Behavior highlights:
//   - args is reused across iterations; fn must not retain it.
//   - With WriteInto(j), the output IS seqs[j]: element j of args holds the
//     pre-overwrite value for the current index, and the returned slice
//     shares storage with seqs[j].
//
// Inputs:
//   - seqs: one or more flat sequences of identical length.
//   - fn: combining closure; must be side-effect free.
//   - target: NewBuffer() or WriteInto(i).
//
// Returns:
//   - []T: the output sequence (fresh, or aliasing seqs[i] under WriteInto).
//
// Errors:
//   - ErrNoSequences when seqs is empty.
//   - ErrLengthMismatch when any two inputs disagree in length.
//   - ErrBadTarget when WriteInto names an index outside seqs.
//
// Determinism:
//   - Fixed index order; stable results.
//
// Complexity:
//   - Time O(n*k), Space O(k) for args plus O(n) under NewBuffer.
func Apply[T any](seqs [][]T, fn func(args []T) T, target Target) ([]T, error) {
	// Stage 1 (Validate): at least one sequence defines the element count.
	k := len(seqs)
	if k == 0 {
		return nil, zipErrorf(opApply, ErrNoSequences)
	}
	// Stage 1 (Validate): all lengths must agree with the first.
	n := len(seqs[0])
	for j := 1; j < k; j++ {
		if len(seqs[j]) != n {
			return nil, zipErrorf(opApply, ErrLengthMismatch)
		}
	}
	// Stage 1 (Validate): an in-place target must name an actual input.
	if target.inPlace && (target.index < 0 || target.index >= k) {
		return nil, zipErrorf(opApply, ErrBadTarget)
	}

	// Stage 2 (Prepare): select the output storage.
	var out []T
	if target.inPlace {
		out = seqs[target.index] // intentional aliasing
	} else {
		out = make([]T, n) // fresh output buffer
	}

	// Stage 3 (Iterate): gather-then-write per index, fixed order.
	args := make([]T, k) // reused scratch; fn must not retain it
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			args[j] = seqs[j][i] // gather BEFORE any overwrite at index i
		}
		out[i] = fn(args)
	}

	return out, nil
}
