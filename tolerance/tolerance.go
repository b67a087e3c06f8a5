// SPDX-License-Identifier: MIT

package tolerance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nputil/nperr"
)

// ErrInvalid is returned by Validate for negative, NaN or infinite tolerances.
var ErrInvalid = fmt.Errorf("tolerance: must be finite and non-negative: %w", nperr.ErrValue)

// Span is a half-open range [Start, End) of positions in a sorted sequence.
type Span struct {
	Start int // first position (the anchor)
	End   int // one past the last position
}

// Len returns the number of positions covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Groups partitions positions 0..n-1 into maximal anchor runs.
//
// Implementation:
//   - Stage 1: open a run at position 0; its anchor is 0.
//   - Stage 2: for j = 1..n-1, keep j in the current run iff near(anchor, j);
//     otherwise close the run at j and make j the new anchor.
//   - Stage 3: close the trailing run at n.
//
// Behavior highlights:
//   - near is only ever asked about (anchor, j) pairs, so membership is a
//     closeness-to-anchor test.
//   - Every position belongs to exactly one span; spans are returned in order
//     and tile [0, n).
//
// Inputs:
//   - n: sequence length; n ≤ 0 yields nil.
//   - near: predicate over positions of the caller's sorted sequence.
//
// Complexity:
//   - Time O(n) predicate calls, Space O(#spans).
func Groups(n int, near func(anchor, j int) bool) []Span {
	if n <= 0 {
		return nil
	}

	var (
		spans  []Span
		anchor int
	)
	for j := 1; j < n; j++ {
		if near(anchor, j) {
			continue
		}
		spans = append(spans, Span{Start: anchor, End: j})
		anchor = j
	}

	return append(spans, Span{Start: anchor, End: n})
}

// IsClose reports whether a is close to the reference value b:
//
//	a == b || |a − b| ≤ atol + rtol·|b|
//
// NaN is never close to anything; infinities are only close to themselves.
// The relation is not symmetric, b is the reference.
func IsClose(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	if isNonFinite(a) || isNonFinite(b) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// Median returns the median of an ascending slice: the middle element for odd
// lengths, the mean of the two middle elements for even lengths.
// The mean stays finite for finite inputs near the float64 limit.
// It returns NaN for an empty slice.
func Median(sorted []float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return math.NaN()
	case n%2 == 1:
		return sorted[n/2]
	}

	a, b := sorted[n/2-1], sorted[n/2]
	if m := (a + b) / 2; !math.IsInf(m, 0) {
		return m
	}

	return a/2 + b/2
}

// Validate checks that tol is usable as a tolerance (finite, ≥ 0).
func Validate(tol float64) error {
	if isNonFinite(tol) || tol < 0 {
		return ErrInvalid
	}

	return nil
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
