package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/dualmat"
	"github.com/sartorproj/robarma/stats"
)

// kalmanEps regularizes the innovation variance denominator so a transient
// f <= 0 during optimization cannot produce a NaN cost that aborts the
// optimizer.
const kalmanEps = 1e-12

// mleCost is the Gaussian likelihood evaluated by the Kalman filter with
// unit innovation variance. The loss is the profile form
// n*log(sum w_i^2) + sum log f_i over the standardized innovations
// w_i = v_i/sqrt(f_i); the normalization is part of the API contract since
// the reported final cost depends on it.
type mleCost struct {
	model *arma.Model
	ss    stateSpace
}

func (c mleCost) eval(phi, theta []dual.Number, mu dual.Number) dual.Number {
	sumW2, sumLogF := c.run(phi, theta, mu, nil)
	n := float64(c.model.N)
	return dual.Add(dual.Scale(n, dual.Log(sumW2)), sumLogF)
}

// run executes the filter pass, accumulating the loss terms and optionally
// reporting each step's innovation variance and prediction error.
func (c mleCost) run(phi, theta []dual.Number, mu dual.Number, rec func(i int, f, v dual.Number)) (sumW2, sumLogF dual.Number) {
	r := c.ss.r
	z := c.ss.vecZ()
	f := c.ss.matF(phi)
	h := c.ss.vecH(theta)
	drift := c.ss.vecC(phi, mu)
	hh := dualmat.Outer(h, h)

	// Stationary initial covariance; when the optimizer wanders into a
	// non-stationary region the Lyapunov system degenerates and the sample
	// autocovariance seeds the filter instead.
	p, err := c.ss.stationaryP(f, h)
	if err != nil {
		p = dualmat.FromMat(stats.AutocovMatrix(c.model.Y, r, r))
	}

	a := make([]dual.Number, r)
	ft := dualmat.T(f)

	for i := 0; i < c.model.N; i++ {
		// Predict.
		a = addVec(dualmat.MulVec(f, a), drift)
		p = dualmat.Add(dualmat.Mul(dualmat.Mul(f, p), ft), hh)

		fi := dual.Add(dualmat.Dot(z, dualmat.MulVec(p, z)), dual.Number{Real: kalmanEps})
		vi := dual.Sub(dual.Number{Real: c.model.Y[i]}, dualmat.Dot(z, a))
		wi := dual.Mul(vi, dual.Inv(dual.Sqrt(fi)))

		sumW2 = dual.Add(sumW2, dual.Mul(wi, wi))
		sumLogF = dual.Add(sumLogF, dual.Log(fi))
		if rec != nil {
			rec(i, fi, vi)
		}

		// Update.
		pz := dualmat.MulVec(p, z)
		gain := dual.Mul(vi, dual.Inv(fi))
		for j := range a {
			a[j] = dual.Add(a[j], dual.Mul(pz[j], gain))
		}
		p = dualmat.Sub(p, dualmat.Scale(dual.Inv(fi), dualmat.Outer(pz, pz)))
	}
	return sumW2, sumLogF
}

func addVec(x, y []dual.Number) []dual.Number {
	out := make([]dual.Number, len(x))
	for i := range x {
		out[i] = dual.Add(x[i], y[i])
	}
	return out
}

// MLE fits an ARMA(p,q) process by Gaussian maximum likelihood in
// state-space form, starting from Hannan-Rissanen.
func MLE(m *arma.Model, opts ...Option) arma.Fit {
	initial := HannanRissanen(m)
	return solve(m, initial, arma.MethodMLE, mleCost{model: m, ss: newStateSpace(m)}, false, newOptions(opts))
}
