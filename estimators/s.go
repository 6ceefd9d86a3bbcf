package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/robust"
	"github.com/sartorproj/robarma/robust/muler"
)

// sCost is the M-scale of the classical residuals under Muler's rho1.
type sCost struct {
	model *arma.Model
}

func (c sCost) eval(phi, theta []dual.Number, mu dual.Number) dual.Number {
	e := c.model.Residuals(phi, theta, mu)
	return robust.Scale(e, muler.RhoMax/2, muler.Rho1)
}

// S fits an ARMA(p,q) process by minimizing the robust M-scale of the
// classical residuals, starting from Hannan-Rissanen.
func S(m *arma.Model, opts ...Option) arma.Fit {
	initial := HannanRissanen(m)
	return solve(m, initial, arma.MethodS, sCost{model: m}, true, newOptions(opts))
}
