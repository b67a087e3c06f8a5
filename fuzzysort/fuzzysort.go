// SPDX-License-Identifier: MIT

package fuzzysort

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/nputil/chunk"
	"github.com/katalvlaran/nputil/matrix"
	"github.com/katalvlaran/nputil/tolerance"
)

// Sort returns idx reordered by table[dim], table[dim+1], ... with values
// closer than the tolerance treated as ties. idx itself is not modified.
//
// Implementation:
//   - Stage 1: validate options, then every index against every dimension.
//   - Stage 2: stable-sort a copy of idx by the current dimension and split it
//     into anchor groups (tolerance.Groups).
//   - Stage 3: re-sort each multi-member group in place at the next dimension
//     until the dimensions run out.
//
// Inputs:
//   - table: D coordinate arrays; rows may differ in length but every index
//     must be valid for all of them.
//   - idx:   indices into the table; duplicates are allowed and kept.
//
// Errors:
//   - ErrIndexOutOfRange if an index is < 0 or ≥ len(table[d]) for some d.
//   - ErrEmptyTable if idx is non-empty and table has no dimensions.
//   - ErrTolerance, ErrDim for invalid options.
//
// Complexity:
//   - Time O(D·n log n) worst case, Space O(n).
func Sort[T Number](table [][]T, idx []int, opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Sort: %w", err)
	}
	if err = validate(table, idx); err != nil {
		return nil, fmt.Errorf("Sort: %w", err)
	}

	out := slices.Clone(idx)
	if out == nil {
		out = []int{}
	}

	ties := make([]int, len(table))
	sortLevel(table, out, o.dim, o.tol, ties)

	o.logger.Debug("fuzzysort: done",
		slog.Int("n", len(out)),
		slog.Int("dims", len(table)),
		slog.Int("start_dim", o.dim),
		slog.Any("tie_groups", ties))

	return out, nil
}

// SortMatrix is Sort over a matrix whose row d holds the d-th coordinate of
// every item (D rows × M items).
//
// Errors:
//   - matrix.ErrNilMatrix if m is nil.
//   - ErrMatrixRead if m fails to return one of its elements.
//   - otherwise as Sort.
func SortMatrix(m matrix.Matrix, idx []int, opts ...Option) ([]int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("SortMatrix: %w", err)
	}

	rows, err := chunk.Rows(m, m.Rows())
	if err != nil {
		return nil, fmt.Errorf("SortMatrix: %w", err)
	}
	table := make([][]float64, 0, m.Rows())
	for _, row := range rows {
		table = append(table, row)
	}
	if len(table) != m.Rows() {
		return nil, fmt.Errorf("SortMatrix: read %d of %d rows: %w", len(table), m.Rows(), ErrMatrixRead)
	}

	return Sort(table, idx, opts...)
}

// validate checks that every index addresses every dimension of table.
func validate[T Number](table [][]T, idx []int) error {
	if len(idx) == 0 {
		return nil
	}
	if len(table) == 0 {
		return fmt.Errorf("%d indices: %w", len(idx), ErrEmptyTable)
	}

	limit := len(table[0])
	for _, col := range table[1:] {
		limit = min(limit, len(col))
	}
	for _, i := range idx {
		if i < 0 || i >= limit {
			return fmt.Errorf("index %d, shortest dimension %d: %w", i, limit, ErrIndexOutOfRange)
		}
	}

	return nil
}

// sortLevel orders work by table[dim] and recurses into tie groups.
// ties[d] counts the groups re-sorted at dimension d.
func sortLevel[T Number](table [][]T, work []int, dim int, tol float64, ties []int) {
	if dim >= len(table) || len(work) < 2 {
		return
	}

	col := table[dim]
	slices.SortStableFunc(work, func(a, b int) int { return compareNaNLast(col[a], col[b]) })

	spans := tolerance.Groups(len(work), func(anchor, j int) bool {
		return gap(col[work[anchor]], col[work[j]]) < tol
	})
	for _, s := range spans {
		if s.Len() < 2 {
			continue
		}
		if dim+1 < len(ties) {
			ties[dim+1]++
		}
		sortLevel(table, work[s.Start:s.End], dim+1, tol, ties)
	}
}

// gap returns hi − lo for lo ≤ hi. Integer differences are taken exactly in
// uint64 before conversion, so coordinates beyond 2^53 stay distinct.
func gap[T Number](lo, hi T) float64 {
	if T(1)/T(2) == 0 { // integer T
		return float64(uint64(hi) - uint64(lo))
	}

	return float64(hi) - float64(lo)
}

// compareNaNLast orders numbers ascending with NaN after every number.
// For integer T the NaN checks are always false.
func compareNaNLast[T Number](a, b T) int {
	an, bn := a != a, b != b
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
