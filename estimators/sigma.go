package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
)

// SigmaOLS estimates the innovation variance from a fit as the mean
// squared classical residual.
func SigmaOLS(fit arma.Fit) float64 {
	e := fit.Model.ResidualsReal(fit.Params)
	var sum float64
	for _, v := range e {
		sum += v * v
	}
	return sum / float64(fit.Model.N)
}

// SigmaMLE estimates the innovation variance from a fit as the mean of
// v_i^2/f_i over the Kalman filter pass at the fitted parameters, where
// v is the prediction error and f the innovation variance under a unit
// noise scale.
func SigmaMLE(fit arma.Fit) float64 {
	m := fit.Model
	c := mleCost{model: m, ss: newStateSpace(m)}

	phi := liftParams(fit.Params.Phi)
	theta := liftParams(fit.Params.Theta)
	mu := dual.Number{Real: fit.Params.Mu}

	var sum float64
	c.run(phi, theta, mu, func(i int, f, v dual.Number) {
		sum += v.Real * v.Real / f.Real
	})
	return sum / float64(m.N)
}

func liftParams(x []float64) []dual.Number {
	d := make([]dual.Number, len(x))
	for i, v := range x {
		d[i] = dual.Number{Real: v}
	}
	return d
}
