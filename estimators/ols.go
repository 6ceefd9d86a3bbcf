package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
)

// olsCost is the sum of squared classical residuals.
type olsCost struct {
	model *arma.Model
}

func (c olsCost) eval(phi, theta []dual.Number, mu dual.Number) dual.Number {
	e := c.model.Residuals(phi, theta, mu)
	var sum dual.Number
	for _, v := range e {
		sum = dual.Add(sum, dual.Mul(v, v))
	}
	return sum
}

// OLS fits an ARMA(p,q) process by ordinary least squares on the classical
// residual recurrence, starting from Hannan-Rissanen.
func OLS(m *arma.Model, opts ...Option) arma.Fit {
	initial := HannanRissanen(m)
	return solve(m, initial, arma.MethodOLS, olsCost{model: m}, true, newOptions(opts))
}
