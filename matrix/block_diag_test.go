package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nputil/matrix"
	"github.com/katalvlaran/nputil/nperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the At fallback path.
type hide struct{ matrix.Matrix }

func TestBlockDiag_NoBlocks(t *testing.T) {
	_, err := matrix.BlockDiag()
	assert.ErrorIs(t, err, matrix.ErrNoBlocks)
	assert.ErrorIs(t, err, nperr.ErrShape)
}

func TestBlockDiag_NilBlock(t *testing.T) {
	_, err := matrix.BlockDiag(MustDense(t, 1, 1, 1), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBlockDiag_Placement(t *testing.T) {
	a := MustDense(t, 1, 2, 1, 2)
	b := MustDense(t, 2, 1, 3, 4)
	c := MustDense(t, 2, 2, 5, 6, 7, 8)

	got, err := matrix.BlockDiag(a, b, c)
	require.NoError(t, err)

	want := []float64{
		1, 2, 0, 0, 0,
		0, 0, 3, 0, 0,
		0, 0, 4, 0, 0,
		0, 0, 0, 5, 6,
		0, 0, 0, 7, 8,
	}
	r, cols := got.Shape()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, cols)
	assert.Equal(t, want, got.Data())
}

// TestBlockDiag_FallbackMatchesDense asserts fast-path == At fallback bitwise.
func TestBlockDiag_FallbackMatchesDense(t *testing.T) {
	a := MustDense(t, 2, 2, 1.5, -2, 0.25, 9)
	b := MustDense(t, 1, 3, 7, 8, 9)

	fast, err := matrix.BlockDiag(a, b)
	require.NoError(t, err)
	slow, err := matrix.BlockDiag(hide{a}, hide{b})
	require.NoError(t, err)

	assert.Equal(t, fast.Data(), slow.Data())
}

// TestBlockDiag_InputsUntouched verifies the blocks are not aliased into the result.
func TestBlockDiag_InputsUntouched(t *testing.T) {
	a := MustDense(t, 1, 1, 1)
	out, err := matrix.BlockDiag(a, a)
	require.NoError(t, err)
	require.NoError(t, out.Set(0, 0, 100))

	v, _ := a.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, []float64{100, 0, 0, 1}, out.Data())
}
