package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/robust/muler"
)

// mmCost is the bounded rho2 sum of the classical residuals against a
// scale held fixed during optimization.
type mmCost struct {
	model *arma.Model
	sigma float64
}

func (c mmCost) eval(phi, theta []dual.Number, mu dual.Number) dual.Number {
	e := c.model.Residuals(phi, theta, mu)
	inv := 1 / c.sigma
	var sum dual.Number
	for _, v := range e {
		sum = dual.Add(sum, muler.Rho2(dual.Scale(inv, v)))
	}
	return dual.Scale(1/float64(c.model.N-c.model.P), sum)
}

// solveMM refines an S-type fit by minimizing the MM cost at the fixed
// scale sigma, starting from the fit's parameters.
func solveMM(m *arma.Model, sigma float64, from arma.Fit, o Options) arma.Fit {
	return solve(m, from, arma.MethodMM, mmCost{model: m, sigma: sigma}, false, o)
}

// MM fits an ARMA(p,q) process by the two-stage MM procedure: an S fit
// provides the fixed scale and the starting point for the bounded-rho
// refinement.
func MM(m *arma.Model, opts ...Option) arma.Fit {
	o := newOptions(opts)
	sFit := S(m, opts...)
	return solveMM(m, sFit.Result.FinalCost, sFit, o)
}
