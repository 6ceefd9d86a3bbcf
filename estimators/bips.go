package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/robust"
	"github.com/sartorproj/robarma/robust/muler"
)

// kappa relates the innovation scale to the scale of the BIP-filtered
// process through the causal representation of the model.
const kappa = 0.8725

// bipSCost is the M-scale of the BIP residuals under Muler's rho1, with
// the innovation scale tied to the candidate parameters through the
// causal weights.
type bipSCost struct {
	model *arma.Model
}

func (c bipSCost) eval(phi, theta []dual.Number, mu dual.Number) dual.Number {
	sigma := bipSigma(c.model, phi, theta)
	e := c.model.BIPResiduals(phi, theta, mu, sigma)
	return robust.Scale(e, muler.RhoMax/2, muler.Rho1)
}

// bipSigma scales the model's robust scale down by the kappa-weighted sum
// of squared causal coefficients of theta(B)/phi(B).
func bipSigma(m *arma.Model, phi, theta []dual.Number) dual.Number {
	lambda := arma.Causal(phi, theta)
	var sum dual.Number
	for _, l := range lambda {
		sum = dual.Add(sum, dual.Mul(l, l))
	}
	denom := dual.Add(dual.Number{Real: 1}, dual.Scale(kappa*kappa, sum))
	return dual.Mul(dual.Number{Real: m.Sigma}, dual.Inv(denom))
}

// BIPS fits an ARMA(p,q) process by minimizing the robust M-scale of the
// bounded-innovation-propagation residuals, starting from Hannan-Rissanen.
func BIPS(m *arma.Model, opts ...Option) arma.Fit {
	initial := HannanRissanen(m)
	return solve(m, initial, arma.MethodBS, bipSCost{model: m}, true, newOptions(opts))
}
