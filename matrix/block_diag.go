// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opBlockDiag = "BlockDiag"

// BlockDiag assembles blocks along the diagonal of a zero-filled matrix.
//
// Implementation:
//   - Stage 1: validate every block is non-nil; sum row and column counts.
//   - Stage 2: allocate the (Σrows)×(Σcols) result.
//   - Stage 3: copy block k at offset (Σrows<k, Σcols<k); *Dense blocks are
//     copied row-by-row from their flat buffer, other Matrix values via At.
//
// Behavior highlights:
//   - Off-diagonal regions stay exactly zero.
//   - Inputs are never mutated.
//
// Inputs:
//   - blocks: one or more matrices of arbitrary (non-empty) shapes.
//
// Returns:
//   - *Dense: the assembled matrix.
//
// Errors:
//   - ErrNoBlocks if called without blocks.
//   - ErrNilMatrix (wrapped with the block index) for nil blocks.
//   - Wrapped At errors from non-Dense blocks.
//
// Complexity:
//   - Time O(R*C) for zero-fill plus O(Σ r_k*c_k) copies, Space O(R*C).
//
// Example:
//
//	a, _ := NewDenseFrom(1, 1, []float64{1})
//	b, _ := NewDenseFrom(2, 2, []float64{2, 3, 4, 5})
//	m, _ := BlockDiag(a, b)
//	// [1, 0, 0]
//	// [0, 2, 3]
//	// [0, 4, 5]
func BlockDiag(blocks ...Matrix) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%s: %w", opBlockDiag, ErrNoBlocks)
	}

	var rows, cols int
	for k, b := range blocks {
		if err := ValidateNotNil(b); err != nil {
			return nil, fmt.Errorf("%s: block %d: %w", opBlockDiag, k, err)
		}
		rows += b.Rows()
		cols += b.Cols()
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBlockDiag, err)
	}

	var r0, c0 int
	for k, b := range blocks {
		br, bc := b.Rows(), b.Cols()
		if d, ok := b.(*Dense); ok {
			// Fast path: one copy per block row.
			for i := 0; i < br; i++ {
				dst := (r0+i)*cols + c0
				copy(out.data[dst:dst+bc], d.data[i*bc:(i+1)*bc])
			}
		} else {
			for i := 0; i < br; i++ {
				for j := 0; j < bc; j++ {
					v, err := b.At(i, j)
					if err != nil {
						return nil, fmt.Errorf("%s: block %d: %w", opBlockDiag, k, err)
					}
					out.data[(r0+i)*cols+c0+j] = v
				}
			}
		}
		r0 += br
		c0 += bc
	}

	return out, nil
}
