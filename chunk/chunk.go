// SPDX-License-Identifier: MIT

// Package chunk splits index ranges into near-equal sections and iterates
// slices or matrix rows batch by batch.
//
// Section boundaries follow the numpy array_split convention: n items split
// into k sections give the first n%k sections ⌊n/k⌋+1 items and the rest
// ⌊n/k⌋. Batched iteration asks for ⌈n/size⌉ such sections, so batches are
// never larger than size and differ in length by at most one.
package chunk

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nputil/matrix"
	"github.com/katalvlaran/nputil/nperr"
)

var (
	// ErrSections is returned for a non-positive section count.
	ErrSections = fmt.Errorf("chunk: sections must be > 0: %w", nperr.ErrValue)

	// ErrSize is returned for a non-positive batch size.
	ErrSize = fmt.Errorf("chunk: batch size must be > 0: %w", nperr.ErrValue)

	// ErrLength is returned for a negative item count.
	ErrLength = fmt.Errorf("chunk: length must be >= 0: %w", nperr.ErrShape)
)

// Span is a half-open range [Start, End) of item positions.
type Span struct {
	Start int
	End   int
}

// Len returns the number of items covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Split divides n items into exactly sections contiguous spans.
//
// Implementation:
//   - Stage 1: validate n ≥ 0 and sections > 0.
//   - Stage 2: base = n / sections, extra = n % sections.
//   - Stage 3: span k has base+1 items for k < extra, base items otherwise.
//
// Behavior highlights:
//   - Spans tile [0, n) in order; trailing spans are empty when sections > n.
//
// Errors:
//   - ErrLength, ErrSections.
//
// Complexity:
//   - Time O(sections), Space O(sections).
func Split(n, sections int) ([]Span, error) {
	if n < 0 {
		return nil, ErrLength
	}
	if sections <= 0 {
		return nil, ErrSections
	}

	base, extra := n/sections, n%sections
	spans := make([]Span, sections)
	start := 0
	for k := range spans {
		size := base
		if k < extra {
			size++
		}
		spans[k] = Span{Start: start, End: start + size}
		start += size
	}

	return spans, nil
}

// Count returns ⌈n/size⌉, and at least 1. size must be positive.
func Count(n, size int) int {
	if c := (n + size - 1) / size; c > 0 {
		return c
	}

	return 1
}

// Batches yields consecutive sub-slices of items, Count(len(items), size)
// of them, with lengths differing by at most one. Empty batches are skipped.
// Yielded slices alias items.
func Batches[T any](items []T, size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, ErrSize
	}
	spans, err := Split(len(items), Count(len(items), size))
	if err != nil {
		return nil, err
	}

	return func(yield func([]T) bool) {
		for _, s := range spans {
			if s.Len() == 0 {
				continue
			}
			if !yield(items[s.Start:s.End:s.End]) {
				return
			}
		}
	}, nil
}

// Rows iterates the rows of m one at a time, materialising them a batch of
// at most size rows at a time. Each yielded row is an independent copy,
// paired with its row index.
//
// Iteration stops early if m reports an error for an in-range element.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrSize.
func Rows(m matrix.Matrix, size int) (iter.Seq2[int, []float64], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Rows: %w", err)
	}
	if size <= 0 {
		return nil, ErrSize
	}
	spans, err := Split(m.Rows(), Count(m.Rows(), size))
	if err != nil {
		return nil, err
	}

	return func(yield func(int, []float64) bool) {
		for _, s := range spans {
			batch, ok := materialise(m, s)
			if !ok {
				return
			}
			for k, row := range batch {
				if !yield(s.Start+k, row) {
					return
				}
			}
		}
	}, nil
}

// materialise copies rows [s.Start, s.End) of m.
func materialise(m matrix.Matrix, s Span) ([][]float64, bool) {
	batch := make([][]float64, 0, s.Len())
	if d, ok := m.(*matrix.Dense); ok {
		for i := s.Start; i < s.End; i++ {
			row, err := d.Row(i)
			if err != nil {
				return nil, false
			}
			batch = append(batch, row)
		}

		return batch, true
	}

	cols := m.Cols()
	for i := s.Start; i < s.End; i++ {
		row := make([]float64, cols)
		for j := range row {
			v, err := m.At(i, j)
			if err != nil {
				return nil, false
			}
			row[j] = v
		}
		batch = append(batch, row)
	}

	return batch, true
}
