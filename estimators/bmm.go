package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/robust/muler"
)

// bmmCost is the bounded rho2 sum of the BIP residuals against a scale
// held fixed during optimization. The same scale feeds the residual
// recurrence itself.
type bmmCost struct {
	model *arma.Model
	sigma float64
}

func (c bmmCost) eval(phi, theta []dual.Number, mu dual.Number) dual.Number {
	e := c.model.BIPResiduals(phi, theta, mu, dual.Number{Real: c.sigma})
	inv := 1 / c.sigma
	var sum dual.Number
	for _, v := range e {
		sum = dual.Add(sum, muler.Rho2(dual.Scale(inv, v)))
	}
	return sum
}

// BIPMM fits an ARMA(p,q) process by the bounded-innovation-propagation
// MM procedure. Both the S and BIP-S fits are computed, the smaller of
// the two scales is fixed, and the MM and BIP-MM refinements run from
// their respective starting points. The refinement with the smaller
// final cost wins.
func BIPMM(m *arma.Model, opts ...Option) arma.Fit {
	o := newOptions(opts)
	sFit := S(m, opts...)
	bsFit := BIPS(m, opts...)

	sigma := sFit.Result.FinalCost
	if bsFit.Result.FinalCost < sigma {
		sigma = bsFit.Result.FinalCost
	}

	fitMM := solveMM(m, sigma, sFit, o)
	fitBMM := solve(m, bsFit, arma.MethodBMM, bmmCost{model: m, sigma: sigma}, false, o)
	if fitBMM.Result.FinalCost <= fitMM.Result.FinalCost {
		return fitBMM
	}
	return fitMM
}
