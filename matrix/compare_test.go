package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nputil/matrix"
	"github.com/katalvlaran/nputil/nperr"
	"github.com/katalvlaran/nputil/tolerance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 1+1e-12, 2, 3, 4-1e-12)
	c := MustDense(t, 2, 2, 1, 2, 3, 4.1)

	for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, b}} {
		ok, err := matrix.AllClose(pair[0], pair[1], 1e-9, 0)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := matrix.AllClose(a, c, 1e-9, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, hide{c}, 0, 0.2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllClose_NonFinite(t *testing.T) {
	inf := MustDense(t, 1, 2, math.Inf(1), 0)
	nan := MustDense(t, 1, 2, math.NaN(), 0)

	ok, err := matrix.AllClose(inf, inf.Clone(), 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(nan, nan.Clone(), 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)

	_, err := matrix.AllClose(a, MustDense(t, 1, 4, 1, 2, 3, 4), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, err, nperr.ErrShape)

	_, err = matrix.AllClose(a, nil, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(a, a, -1, 0)
	assert.ErrorIs(t, err, tolerance.ErrInvalid)
	_, err = matrix.AllClose(a, a, 0, math.NaN())
	assert.ErrorIs(t, err, tolerance.ErrInvalid)
}
