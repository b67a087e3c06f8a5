package chunk_test

import (
	"testing"

	"github.com/katalvlaran/nputil/chunk"
	"github.com/katalvlaran/nputil/matrix"
	"github.com/katalvlaran/nputil/nperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lens extracts span lengths for compact comparisons.
func lens(spans []chunk.Span) []int {
	out := make([]int, len(spans))
	for i, s := range spans {
		out[i] = s.Len()
	}

	return out
}

// TestSplit_MatchesArraySplit compares against numpy.array_split section sizes.
func TestSplit_MatchesArraySplit(t *testing.T) {
	cases := []struct {
		n, sections int
		want        []int
	}{
		{10, 3, []int{4, 3, 3}},
		{9, 3, []int{3, 3, 3}},
		{2, 4, []int{1, 1, 0, 0}},
		{0, 1, []int{0}},
		{16385, 1, []int{16385}},
		{32769, 2, []int{16385, 16384}},
	}
	for _, tc := range cases {
		spans, err := chunk.Split(tc.n, tc.sections)
		require.NoError(t, err)
		assert.Equal(t, tc.want, lens(spans), "n=%d sections=%d", tc.n, tc.sections)
		assert.Equal(t, 0, spans[0].Start)
		assert.Equal(t, tc.n, spans[len(spans)-1].End)
	}
}

func TestSplit_Errors(t *testing.T) {
	_, err := chunk.Split(5, 0)
	assert.ErrorIs(t, err, chunk.ErrSections)
	assert.ErrorIs(t, err, nperr.ErrValue)

	_, err = chunk.Split(-1, 2)
	assert.ErrorIs(t, err, chunk.ErrLength)
	assert.ErrorIs(t, err, nperr.ErrShape)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 1, chunk.Count(0, 1000))
	assert.Equal(t, 1, chunk.Count(1000, 1000))
	assert.Equal(t, 2, chunk.Count(1001, 1000))
	assert.Equal(t, 3, chunk.Count(7, 3))
}

func TestBatches(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}
	seq, err := chunk.Batches(items, 3)
	require.NoError(t, err)

	var got [][]int
	for b := range seq {
		got = append(got, b)
	}
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5, 6}}, got)
}

func TestBatches_EmptyAndBadSize(t *testing.T) {
	seq, err := chunk.Batches([]string{}, 4)
	require.NoError(t, err)
	for range seq {
		t.Fatal("no batches expected")
	}

	_, err = chunk.Batches([]int{1}, 0)
	assert.ErrorIs(t, err, chunk.ErrSize)
}

// TestBatches_EarlyStop ensures breaking out of the loop is honoured.
func TestBatches_EarlyStop(t *testing.T) {
	seq, err := chunk.Batches([]int{1, 2, 3, 4}, 1)
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

// hide masks *matrix.Dense to exercise the At fallback.
type hide struct{ matrix.Matrix }

func TestRows(t *testing.T) {
	m, err := matrix.NewDenseFrom(5, 2, []float64{0, 1, 10, 11, 20, 21, 30, 31, 40, 41})
	require.NoError(t, err)

	for name, mm := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		t.Run(name, func(t *testing.T) {
			seq, err := chunk.Rows(mm, 2)
			require.NoError(t, err)

			var idx []int
			var rows [][]float64
			for i, row := range seq {
				idx = append(idx, i)
				rows = append(rows, row)
			}
			assert.Equal(t, []int{0, 1, 2, 3, 4}, idx)
			assert.Equal(t, [][]float64{{0, 1}, {10, 11}, {20, 21}, {30, 31}, {40, 41}}, rows)
		})
	}
}

func TestRows_Errors(t *testing.T) {
	_, err := chunk.Rows(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	_, err = chunk.Rows(m, -1)
	assert.ErrorIs(t, err, chunk.ErrSize)
}
