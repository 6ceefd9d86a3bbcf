package dualmat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
)

func d(re, em float64) dual.Number { return dual.Number{Real: re, Emag: em} }

func TestMul(t *testing.T) {
	a := NewDense(2, 2)
	a.Set(0, 0, d(1, 0))
	a.Set(0, 1, d(2, 0))
	a.Set(1, 0, d(3, 0))
	a.Set(1, 1, d(4, 0))

	b := NewDense(2, 2)
	b.Set(0, 0, d(5, 0))
	b.Set(0, 1, d(6, 0))
	b.Set(1, 0, d(7, 0))
	b.Set(1, 1, d(8, 0))

	c := Mul(a, b)
	assert.Equal(t, 19.0, c.At(0, 0).Real)
	assert.Equal(t, 22.0, c.At(0, 1).Real)
	assert.Equal(t, 43.0, c.At(1, 0).Real)
	assert.Equal(t, 50.0, c.At(1, 1).Real)
}

func TestMulProductRule(t *testing.T) {
	// d(AB) = (dA)B + A(dB): put tangents on both factors and check one
	// entry by hand.
	a := NewDense(1, 2)
	a.Set(0, 0, d(2, 1))
	a.Set(0, 1, d(3, 0))

	b := NewDense(2, 1)
	b.Set(0, 0, d(5, 0))
	b.Set(1, 0, d(7, 2))

	c := Mul(a, b)
	// Real: 2*5 + 3*7 = 31. Tangent: 1*5 + 3*2 = 11.
	assert.InDelta(t, 31.0, c.At(0, 0).Real, 1e-12)
	assert.InDelta(t, 11.0, c.At(0, 0).Emag, 1e-12)
}

func TestTransposeAndOuter(t *testing.T) {
	x := []dual.Number{d(1, 0), d(2, 0)}
	y := []dual.Number{d(3, 0), d(4, 0), d(5, 0)}

	o := Outer(x, y)
	r, c := o.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 8.0, o.At(1, 1).Real)

	ot := T(o)
	r, c = ot.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, o.At(0, 2).Real, ot.At(2, 0).Real)
}

func TestKron(t *testing.T) {
	a := Eye(2)
	b := NewDense(2, 2)
	b.Set(0, 0, d(1, 0))
	b.Set(0, 1, d(2, 0))
	b.Set(1, 0, d(3, 0))
	b.Set(1, 1, d(4, 0))

	k := Kron(a, b)
	r, c := k.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)

	// Top-left block is b, off-diagonal blocks vanish.
	assert.Equal(t, 2.0, k.At(0, 1).Real)
	assert.Equal(t, 4.0, k.At(1, 1).Real)
	assert.Equal(t, 0.0, k.At(0, 2).Real)
	assert.Equal(t, 3.0, k.At(3, 2).Real)
}

func TestFromMatAndReal(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	dm := FromMat(src)
	back := Real(dm)
	require.True(t, mat.EqualApprox(src, back, 1e-15))
}

func TestSolvePrimal(t *testing.T) {
	a := NewDense(2, 2)
	a.Set(0, 0, d(2, 0))
	a.Set(1, 1, d(4, 0))
	b := []dual.Number{d(2, 0), d(4, 0)}

	x, err := Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0].Real, 1e-12)
	assert.InDelta(t, 1.0, x[1].Real, 1e-12)
}

func TestSolveTangent(t *testing.T) {
	// A = A0 + eps*A1 with A1 = e11; x1 = A0^{-1}(b1 - A1 x0).
	a := NewDense(2, 2)
	a.Set(0, 0, d(2, 1))
	a.Set(1, 1, d(4, 0))
	b := []dual.Number{d(2, 0), d(4, 0)}

	x, err := Solve(a, b)
	require.NoError(t, err)
	// x0 = (1, 1); b1 - A1 x0 = (-1, 0); A0^{-1} of that = (-0.5, 0).
	assert.InDelta(t, -0.5, x[0].Emag, 1e-12)
	assert.InDelta(t, 0.0, x[1].Emag, 1e-12)
}

func TestSolveTangentMatchesFiniteDifference(t *testing.T) {
	// Perturb one matrix entry and compare the dual tangent of the
	// solution against a central finite difference.
	build := func(v float64, em float64) *Dense {
		a := NewDense(2, 2)
		a.Set(0, 0, d(3, em))
		a.Set(0, 1, d(v, 0))
		a.Set(1, 0, d(1, 0))
		a.Set(1, 1, d(5, 0))
		return a
	}
	b := []dual.Number{d(1, 0), d(2, 0)}

	x, err := Solve(build(2, 1), b)
	require.NoError(t, err)

	h := 1e-7
	solveAt := func(a00 float64) []float64 {
		a := NewDense(2, 2)
		a.Set(0, 0, d(a00, 0))
		a.Set(0, 1, d(2, 0))
		a.Set(1, 0, d(1, 0))
		a.Set(1, 1, d(5, 0))
		s, err := Solve(a, b)
		require.NoError(t, err)
		out := make([]float64, len(s))
		for i, v := range s {
			out[i] = v.Real
		}
		return out
	}
	up := solveAt(3 + h)
	down := solveAt(3 - h)
	for i := range x {
		fd := (up[i] - down[i]) / (2 * h)
		if math.Abs(x[i].Emag-fd) > 1e-6 {
			t.Errorf("x[%d] tangent %f disagrees with finite difference %f", i, x[i].Emag, fd)
		}
	}
}

func TestSolveSingular(t *testing.T) {
	a := NewDense(2, 2)
	a.Set(0, 0, d(1, 0))
	a.Set(0, 1, d(2, 0))
	a.Set(1, 0, d(2, 0))
	a.Set(1, 1, d(4, 0))
	_, err := Solve(a, []dual.Number{d(1, 0), d(2, 0)})
	assert.Error(t, err)
}
