package npeval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nputil/npeval"
	"github.com/katalvlaran/nputil/nperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Arithmetic(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"2 - 3 - 4", -5},
		{"8 / 4 / 2", 1},
		{"--3", 3},
		{"+-3", -3},
		{"-2 * -2", 4},
		{"7 % 3", 1},
		{"-2 % 3", 1},
		{"7 % -3", -2},
		{"-7 // 2", -4},
		{"7 // 2", 3},
		{"1.5e2 + .5", 150.5},
		{"1e-3 * 1000", 1},
		{"\t1\n+\r2 ", 3},
	}
	for _, tc := range cases {
		got, err := npeval.Eval(tc.expr, nil)
		require.NoError(t, err, tc.expr)
		require.Len(t, got, 1, tc.expr)
		assert.InDelta(t, tc.want, got[0], 1e-12, tc.expr)
	}
}

func TestEval_IEEE(t *testing.T) {
	got, err := npeval.Eval("1 / 0", nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got[0], 1))

	got, err = npeval.Eval("log(-1)", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]))

	got, err = npeval.Eval("1 % 0", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]))
}

func TestEval_Functions(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"exp(0)", 1},
		{"log(exp(2))", 2},
		{"sin(pi/2)", 1},
		{"asin(1)", math.Pi / 2},
		{"cos(0)", 1},
		{"acos(1)", 0},
		{"tan(pi/4)", 1},
		{"atan(1)", math.Pi / 4},
		{"atan2(1, 1)", math.Pi / 4},
		{"abs(-3)", 3},
		{"pow(2, 10)", 1024},
		{"sqrt(16)", 4},
		{"tanh(0)", 0},
		{"max(2, 5)", 5},
		{"min(2, 5)", 2},
		{"pow(sqrt(2), 2) - 2", 0},
	}
	for _, tc := range cases {
		got, err := npeval.Eval(tc.expr, nil)
		require.NoError(t, err, tc.expr)
		assert.InDelta(t, tc.want, got[0], 1e-12, tc.expr)
	}
}

func TestEval_Broadcasting(t *testing.T) {
	vars := map[string][]float64{
		"x": {1, 2, 3},
		"y": {10, 20, 30},
		"z": {1, 2},
		"k": {4},
		"e": {},
	}

	got, err := npeval.Eval("x*2 + 1", vars)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 7}, got)

	got, err = npeval.Eval("x + y", vars)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, got)

	got, err = npeval.Eval("max(x, 2)", vars)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 3}, got)

	got, err = npeval.Eval("pow(k, x)", vars)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 16, 64}, got)

	got, err = npeval.Eval("-x", vars)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -2, -3}, got)

	got, err = npeval.Eval("e + 1", vars)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = npeval.Eval("x + z", vars)
	assert.ErrorIs(t, err, npeval.ErrLength)
	assert.ErrorIs(t, err, nperr.ErrShape)

	_, err = npeval.Eval("atan2(x, z)", vars)
	assert.ErrorIs(t, err, npeval.ErrLength)

	assert.Equal(t, []float64{1, 2, 3}, vars["x"], "variables must not be modified")
}

func TestEval_Shadowing(t *testing.T) {
	got, err := npeval.Eval("pi", nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{math.Pi}, got)

	got, err = npeval.Eval("pi * 2", map[string][]float64{"pi": {3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{6}, got)

	// A variable named like a function does not hide the function.
	got, err = npeval.Eval("sin(sin)", map[string][]float64{"sin": {0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, got)
}

func TestCompile_Rejections(t *testing.T) {
	cases := []struct {
		expr string
		want error
	}{
		{"x^2", npeval.ErrExponent},
		{"x**2", npeval.ErrExponent},
		{"x; y", npeval.ErrCharacters},
		{"x[0]", npeval.ErrCharacters},
		{"x == 1", npeval.ErrCharacters},
		{"__import__('os')", npeval.ErrCharacters},
		{"x.real", npeval.ErrSyntax},
		{"(x).real", npeval.ErrSyntax},
		{"pi.imag", npeval.ErrSyntax},
		{"x.5", npeval.ErrSyntax},
		{"", npeval.ErrSyntax},
		{"   ", npeval.ErrSyntax},
		{"1 +", npeval.ErrSyntax},
		{"(1", npeval.ErrSyntax},
		{"1, 2", npeval.ErrSyntax},
		{"x y", npeval.ErrSyntax},
		{"foo(1)", npeval.ErrUnknownFunction},
		{"sqrt(foo(1))", npeval.ErrUnknownFunction},
		{"exp(1, 2)", npeval.ErrArity},
		{"pow(2)", npeval.ErrArity},
		{"max()", npeval.ErrArity},
	}
	for _, tc := range cases {
		_, err := npeval.Compile(tc.expr)
		assert.ErrorIs(t, err, tc.want, "expr %q", tc.expr)
		assert.ErrorIs(t, err, nperr.ErrValue, "expr %q", tc.expr)
	}
}

func TestEval_UnknownName(t *testing.T) {
	_, err := npeval.Eval("x + y", map[string][]float64{"x": {1}})
	assert.ErrorIs(t, err, npeval.ErrUnknownName)
	assert.ErrorIs(t, err, nperr.ErrValue)
	assert.Contains(t, err.Error(), `"y"`)
}

func TestExpr_Reuse(t *testing.T) {
	e, err := npeval.Compile("a*t + b")
	require.NoError(t, err)
	assert.Equal(t, "a*t + b", e.String())
	assert.Equal(t, []string{"a", "b", "t"}, e.Vars())

	for _, tc := range []struct {
		t    []float64
		want []float64
	}{
		{[]float64{0}, []float64{1}},
		{[]float64{1, 2}, []float64{3, 5}},
	} {
		got, err := e.Eval(map[string][]float64{"a": {2}, "b": {1}, "t": tc.t})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestExpr_VarsSkipsConstantsAndFunctions(t *testing.T) {
	e, err := npeval.Compile("sin(pi*x) + x*max(y, 0)")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, e.Vars())
}
