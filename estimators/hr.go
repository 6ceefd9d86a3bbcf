package estimators

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/robarma/arma"
)

// HannanRissanen fits an ARMA(p,q) process with the two-stage least-squares
// estimator of Hannan and Rissanen. Stage one fits a long AR(m) model with
// m = max(2p+1, 2q+1) to the centered series and keeps its residuals as
// innovation proxies; stage two regresses the series on its own lags and the
// lagged proxies to read off phi and theta. The estimate is closed form: it
// always converges with zero reported cost and serves as the starting point
// of every iterative estimator.
func HannanRissanen(m *arma.Model) arma.Fit {
	mean := 0.0
	for _, v := range m.Y {
		mean += v
	}
	mean /= float64(m.N)

	// Stage 1: long autoregression on the centered series.
	mm := maxInt(2*m.P+1, 2*m.Q+1)
	rows := m.N - mm
	ax := mat.NewDense(rows, mm, nil)
	for j := 0; j < mm; j++ {
		for i := 0; i < rows; i++ {
			ax.Set(i, j, m.Y[mm-j-1+i]-mean)
		}
	}
	yy := make([]float64, rows)
	for i := range yy {
		yy[i] = m.Y[mm+i] - mean
	}

	ar, ok := lstsq(ax, yy)
	if !ok {
		return closedForm(m, make([]float64, m.P), make([]float64, m.Q), mean)
	}

	// Innovation proxies from the AR fit.
	ee := make([]float64, rows)
	for i := 0; i < rows; i++ {
		pred := 0.0
		for j := 0; j < mm; j++ {
			pred += ax.At(i, j) * ar[j]
		}
		ee[i] = yy[i] - pred
	}

	// Stage 2: regression on lagged series and lagged proxies.
	rr := maxInt(m.P+1, m.Q+1)
	rows2 := rows - rr
	if rows2 < m.P+m.Q {
		return closedForm(m, make([]float64, m.P), make([]float64, m.Q), mean)
	}
	design := mat.NewDense(rows2, m.P+m.Q, nil)
	for j := 0; j < m.P; j++ {
		for i := 0; i < rows2; i++ {
			design.Set(i, j, yy[rr-j-1+i])
		}
	}
	for j := 0; j < m.Q; j++ {
		for i := 0; i < rows2; i++ {
			design.Set(i, m.P+j, ee[rr-j-1+i])
		}
	}
	target := make([]float64, rows2)
	for i := range target {
		target[i] = yy[rr+i]
	}

	beta, ok := lstsq(design, target)
	if !ok {
		return closedForm(m, make([]float64, m.P), make([]float64, m.Q), mean)
	}

	phi := make([]float64, m.P)
	copy(phi, beta[:m.P])
	theta := make([]float64, m.Q)
	copy(theta, beta[m.P:])
	return closedForm(m, phi, theta, mean)
}

func closedForm(m *arma.Model, phi, theta []float64, mu float64) arma.Fit {
	return arma.Fit{
		Model:  m,
		Params: arma.Params{Phi: phi, Theta: theta, Mu: mu},
		Result: arma.Result{Method: arma.MethodHR, Convergence: true, FinalCost: 0},
	}
}

// lstsq solves the least-squares problem a*x = b by QR, returning ok=false
// when the design is too ill-conditioned to solve.
func lstsq(a *mat.Dense, b []float64) ([]float64, bool) {
	rows, cols := a.Dims()
	if rows < cols {
		return nil, false
	}
	rhs := mat.NewDense(rows, 1, nil)
	for i, v := range b {
		rhs.Set(i, 0, v)
	}
	var sol mat.Dense
	if err := sol.Solve(a, rhs); err != nil {
		return nil, false
	}
	out := make([]float64, cols)
	for i := range out {
		out[i] = sol.At(i, 0)
	}
	return out, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
