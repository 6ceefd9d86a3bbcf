package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/dualmat"
	"github.com/sartorproj/robarma/robust"
	"github.com/sartorproj/robarma/robust/bianco"
	"github.com/sartorproj/robarma/stats"
)

// ftauCost is the filtered tau-estimator objective: a robust Kalman filter
// whose gain is bounded by the Bianco psi- and w-functions, scored by
// n*log(tau^2(u/s)) + sum log s_i^2 with s_i normalized by sigma.
//
// sigma is the robust S-scale of the median-centered series, fixed at
// construction: the scale is estimated once before optimization begins, not
// re-derived on every cost evaluation.
type ftauCost struct {
	model *arma.Model
	ss    stateSpace
	sigma float64
}

func newFTauCost(m *arma.Model) ftauCost {
	centered := make([]dual.Number, m.N)
	med := robust.Median(m.Y)
	for i, v := range m.Y {
		centered[i] = dual.Number{Real: v - med}
	}
	return ftauCost{model: m, ss: newStateSpace(m), sigma: bianco.S(centered).Real}
}

func (c ftauCost) eval(phi, theta []dual.Number, mu dual.Number) dual.Number {
	n := c.model.N
	r := c.ss.r
	z := c.ss.vecZ()
	f := c.ss.matF(phi)
	h := c.ss.vecH(theta)
	drift := c.ss.vecC(phi, mu)
	ft := dualmat.T(f)

	sigma := dual.Number{Real: c.sigma}
	qn := dualmat.Scale(dual.Mul(sigma, sigma), dualmat.Outer(h, h))

	// Robust autocovariance replaces the stationary covariance seed.
	p := dualmat.FromMat(stats.RobustAutocovMatrix(c.model.Y, r, r))

	a := make([]dual.Number, r)
	s := make([]dual.Number, n)
	u := make([]dual.Number, n)
	s[0] = dual.Number{Real: 1}

	for i := 1; i < n; i++ {
		// Predict.
		a = addVec(dualmat.MulVec(f, a), drift)
		p = dualmat.Add(dualmat.Mul(dualmat.Mul(f, p), ft), qn)

		mt := p.Col(0)
		s[i] = dual.Sqrt(mt[0])
		u[i] = dual.Sub(dual.Number{Real: c.model.Y[i]}, dualmat.Dot(z, a))

		// Bounded-influence update.
		us := dual.Mul(u[i], dual.Inv(s[i]))
		psi := bianco.Psi(us)
		invS := dual.Inv(s[i])
		for j := range a {
			a[j] = dual.Add(a[j], dual.Mul(dual.Mul(mt[j], invS), psi))
		}
		w := bianco.W(us)
		inv2 := dual.Mul(invS, invS)
		p = dualmat.Sub(p, dualmat.Scale(dual.Mul(w, inv2), dualmat.Outer(mt, mt)))
	}

	// Loss over the sigma-normalized prediction scales.
	invSigma := dual.Inv(sigma)
	norm := make([]dual.Number, n)
	var sumLog dual.Number
	for i := 0; i < n; i++ {
		ai := dual.Mul(s[i], invSigma)
		norm[i] = dual.Mul(u[i], dual.Inv(ai))
		sumLog = dual.Add(sumLog, dual.Log(dual.Mul(ai, ai)))
	}
	tau2 := bianco.Tau2(norm)
	return dual.Add(dual.Scale(float64(n), dual.Log(tau2)), sumLog)
}

// FTau fits an ARMA(p,q) process with the filtered tau-estimator of Bianco,
// Garcia Ben, Martinez and Yohai, starting from Hannan-Rissanen.
func FTau(m *arma.Model, opts ...Option) arma.Fit {
	initial := HannanRissanen(m)
	return solve(m, initial, arma.MethodFTau, newFTauCost(m), false, newOptions(opts))
}
