package estimators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/dual"
)

func TestStationaryPAR1(t *testing.T) {
	// AR(1): the stationary variance is 1/(1-phi^2).
	m := simulate(t, []float64{0.5}, nil, 0, 400, 40)
	ss := newStateSpace(m)

	phi := []dual.Number{{Real: 0.5}}
	f := ss.matF(phi)
	h := ss.vecH(nil)

	p, err := ss.stationaryP(f, h)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1-0.25), p.At(0, 0).Real, 1e-9)
}

func TestStationaryPSolvesLyapunov(t *testing.T) {
	// Check P = F P F^T + H H^T entrywise for an ARMA(1,1) system.
	m := simulate(t, []float64{0.4}, []float64{0.3}, 0, 400, 41)
	ss := newStateSpace(m)

	phi := []dual.Number{{Real: 0.4}}
	theta := []dual.Number{{Real: 0.3}}
	f := ss.matF(phi)
	h := ss.vecH(theta)

	p, err := ss.stationaryP(f, h)
	require.NoError(t, err)

	for i := 0; i < ss.r; i++ {
		for j := 0; j < ss.r; j++ {
			// (F P F^T + H H^T)_{ij}
			var fpft float64
			for a := 0; a < ss.r; a++ {
				for b := 0; b < ss.r; b++ {
					fpft += f.At(i, a).Real * p.At(a, b).Real * f.At(j, b).Real
				}
			}
			fpft += h[i].Real * h[j].Real
			assert.InDelta(t, p.At(i, j).Real, fpft, 1e-9, "entry (%d,%d)", i, j)
		}
	}
}

func TestStationaryPFailsAtUnitRoot(t *testing.T) {
	m := simulate(t, []float64{0.5}, nil, 0, 400, 42)
	ss := newStateSpace(m)

	phi := []dual.Number{{Real: 1.0}}
	f := ss.matF(phi)
	h := ss.vecH(nil)

	_, err := ss.stationaryP(f, h)
	assert.Error(t, err)
}

func TestGradientMatchesFiniteDifference(t *testing.T) {
	m := simulate(t, []float64{0.5}, []float64{0.2}, 0, 300, 43)
	c := olsCost{model: m}
	x := []float64{0.4, 0.1, 0.05}

	h := 1e-6
	for j := range x {
		grad := evalAt(m, c, x, j).Emag

		up := append([]float64(nil), x...)
		up[j] += h
		down := append([]float64(nil), x...)
		down[j] -= h
		fd := (evalAt(m, c, up, -1).Real - evalAt(m, c, down, -1).Real) / (2 * h)

		assert.InDelta(t, fd, grad, 1e-3, "coordinate %d", j)
	}
}

func TestMLEGradientMatchesFiniteDifference(t *testing.T) {
	m := simulate(t, []float64{0.5}, nil, 0, 200, 44)
	c := mleCost{model: m, ss: newStateSpace(m)}
	x := []float64{0.4, 0.1}

	h := 1e-6
	for j := range x {
		grad := evalAt(m, c, x, j).Emag

		up := append([]float64(nil), x...)
		up[j] += h
		down := append([]float64(nil), x...)
		down[j] -= h
		fd := (evalAt(m, c, up, -1).Real - evalAt(m, c, down, -1).Real) / (2 * h)

		assert.InDelta(t, fd, grad, 1e-3, "coordinate %d", j)
	}
}
