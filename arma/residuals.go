package arma

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/robust/muler"
)

// Residuals computes the classical ARMA innovation residuals
//
//	e_i = y_i - mu*(1 - sum phi) - sum_k phi_k y_{i-k} - sum_k theta_k e_{i-k}
//
// with e_0..e_{r-1} = 0. Inputs are dual so the recurrence is
// differentiable in (phi, theta, mu).
func (m *Model) Residuals(phi, theta []dual.Number, mu dual.Number) []dual.Number {
	e := make([]dual.Number, m.N)
	drift := driftTerm(phi, mu)

	for i := m.R; i < m.N; i++ {
		var ar dual.Number
		for k := 1; k <= m.P; k++ {
			ar = dual.Add(ar, dual.Scale(m.Y[i-k], phi[k-1]))
		}
		var ma dual.Number
		for k := 1; k <= m.Q; k++ {
			ma = dual.Add(ma, dual.Mul(theta[k-1], e[i-k]))
		}
		ei := dual.Sub(dual.Number{Real: m.Y[i]}, drift)
		ei = dual.Sub(ei, ar)
		e[i] = dual.Sub(ei, ma)
	}
	return e
}

// BIPResiduals computes the bounded-innovation-propagation residuals
//
//	e_i = y_i - mu*(1 - sum phi)
//	    - sum_k phi_k (y_{i-k} - e_{i-k})
//	    - sigma * sum_k phi_k eta(e_{i-k}/sigma)
//	    - sigma * sum_k theta_k eta(e_{i-k}/sigma)
//
// where eta is the Muler redescender. Past observations are replaced by
// their bounded reconstruction, so a single outlier cannot propagate
// through the recurrence. sigma is a scale estimate fixed by the caller.
func (m *Model) BIPResiduals(phi, theta []dual.Number, mu, sigma dual.Number) []dual.Number {
	e := make([]dual.Number, m.N)
	drift := driftTerm(phi, mu)
	invSigma := dual.Inv(sigma)

	for i := m.R; i < m.N; i++ {
		var ar dual.Number
		for k := 1; k <= m.P; k++ {
			ar = dual.Add(ar, dual.Mul(phi[k-1], dual.Sub(dual.Number{Real: m.Y[i-k]}, e[i-k])))
		}
		var rp dual.Number
		for k := 1; k <= m.P; k++ {
			g := dual.Mul(sigma, muler.Eta(dual.Mul(e[i-k], invSigma)))
			rp = dual.Add(rp, dual.Mul(phi[k-1], g))
		}
		var rq dual.Number
		for k := 1; k <= m.Q; k++ {
			g := dual.Mul(sigma, muler.Eta(dual.Mul(e[i-k], invSigma)))
			rq = dual.Add(rq, dual.Mul(theta[k-1], g))
		}
		ei := dual.Sub(dual.Number{Real: m.Y[i]}, drift)
		ei = dual.Sub(ei, ar)
		ei = dual.Sub(ei, rq)
		e[i] = dual.Sub(ei, rp)
	}
	return e
}

// ResidualsReal evaluates the classical residuals at float64 parameters.
func (m *Model) ResidualsReal(p Params) []float64 {
	e := m.Residuals(liftVec(p.Phi), liftVec(p.Theta), dual.Number{Real: p.Mu})
	out := make([]float64, len(e))
	for i, v := range e {
		out[i] = v.Real
	}
	return out
}

// driftTerm is mu*(1 - sum phi).
func driftTerm(phi []dual.Number, mu dual.Number) dual.Number {
	one := dual.Number{Real: 1}
	var sum dual.Number
	for _, p := range phi {
		sum = dual.Add(sum, p)
	}
	return dual.Mul(mu, dual.Sub(one, sum))
}

func liftVec(x []float64) []dual.Number {
	d := make([]dual.Number, len(x))
	for i, v := range x {
		d[i] = dual.Number{Real: v}
	}
	return d
}
