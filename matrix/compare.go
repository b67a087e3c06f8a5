// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/nputil/tolerance"
)

// AllClose reports whether every element of a is close to the element of b
// at the same position: a == b or |a−b| ≤ atol + rtol·|b|.
// NaN is never close; infinities are close only to themselves.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - tolerance.ErrInvalid if rtol or atol is negative, NaN or infinite.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	for _, tol := range [2]float64{rtol, atol} {
		if err := tolerance.Validate(tol); err != nil {
			return false, fmt.Errorf("AllClose: %w", err)
		}
	}
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}

	// Dense fast-path over the flat buffers.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for k := range da.data {
				if !tolerance.IsClose(da.data[k], db.data[k], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j) // in range by construction
			bv, _ := b.At(i, j)
			if !tolerance.IsClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
