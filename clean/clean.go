// SPDX-License-Identifier: MIT

package clean

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/nputil/matrix"
	"github.com/katalvlaran/nputil/tolerance"
)

// Clean returns a cleaned copy of values; the input is never modified.
//
// Implementation:
//   - Stage 1: copy, then flush every |v| < tol to +0.
//   - Stage 2: stable-sort magnitudes ascending (NaN last) and split them into
//     anchor groups with IsClose(m, anchor, tol, 0.1·tol).
//   - Stage 3: overwrite each multi-member group with its median magnitude and
//     restore every element's sign.
//
// Inputs of length 0 or 1 are returned after the flush only.
//
// Errors:
//   - ErrTolerance if tol is negative, NaN or infinite.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Clean[T constraints.Float](values []T, opts ...Option) ([]T, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Clean: %w", err)
	}

	return clean(values, o), nil
}

// CleanMatrix cleans all entries of m as one flat row-major array and returns
// the result as a new Dense of the same shape.
//
// Errors:
//   - matrix.ErrNilMatrix if m is nil.
//   - ErrTolerance if tol is invalid.
//   - any error m.At reports, wrapped.
func CleanMatrix(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("CleanMatrix: %w", err)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("CleanMatrix: %w", err)
	}

	rows, cols := m.Rows(), m.Cols()
	flat, err := flatten(m)
	if err != nil {
		return nil, fmt.Errorf("CleanMatrix: %w", err)
	}
	cleaned := clean(flat, o)

	return matrix.NewDenseFrom(rows, cols, cleaned)
}

// Wrap returns a producer that runs fn and cleans its output.
// Errors from fn are returned unchanged. WithEnabled(false) turns the wrapper
// into a pass-through. Options are validated on every call.
func Wrap[T constraints.Float](fn func() ([]T, error), opts ...Option) func() ([]T, error) {
	return func() ([]T, error) {
		o, err := gatherOptions(opts)
		if err != nil {
			return nil, fmt.Errorf("Wrap: %w", err)
		}

		vals, err := fn()
		if err != nil || !o.enabled {
			return vals, err
		}

		return clean(vals, o), nil
	}
}

// clean runs both passes on a copy of values.
func clean[T constraints.Float](values []T, o Options) []T {
	out := slices.Clone(values)
	if out == nil {
		out = []T{}
	}

	// Stage 1: flush.
	flushed := 0
	for i, v := range out {
		if math.Abs(float64(v)) < o.tol {
			out[i] = 0
			flushed++
		}
	}

	n := len(out)
	if n <= 1 {
		return out
	}

	// Stage 2: sort magnitudes, remembering where each one came from.
	mag := make([]float64, n)
	order := make([]int, n)
	for i, v := range out {
		mag[i] = math.Abs(float64(v))
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return compareNaNLast(mag[a], mag[b]) })

	sorted := make([]float64, n)
	for k, i := range order {
		sorted[k] = mag[i]
	}

	rtol, atol := o.tol, atolFactor*o.tol
	spans := tolerance.Groups(n, func(anchor, j int) bool {
		return tolerance.IsClose(sorted[j], sorted[anchor], rtol, atol)
	})

	// Stage 3: coalesce groups, then restore signs.
	coalesced := 0
	for _, s := range spans {
		if s.Len() < 2 {
			continue
		}
		med := tolerance.Median(sorted[s.Start:s.End])
		for _, i := range order[s.Start:s.End] {
			mag[i] = med
		}
		coalesced++
	}
	for i, v := range out {
		out[i] = T(math.Copysign(mag[i], float64(v)))
	}

	o.logger.Debug("clean: done",
		slog.Int("n", n),
		slog.Int("flushed", flushed),
		slog.Int("groups", len(spans)),
		slog.Int("coalesced", coalesced),
		slog.Float64("tol", o.tol))

	return out
}

// compareNaNLast orders magnitudes ascending with every NaN after every number.
func compareNaNLast(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}

	return cmp.Compare(a, b)
}

// flatten copies the entries of m in row-major order.
func flatten(m matrix.Matrix) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Data(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	flat := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			flat = append(flat, v)
		}
	}

	return flat, nil
}
