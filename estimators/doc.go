// Package estimators provides the high-level ARMA(p,q) estimators: the
// closed-form Hannan-Rissanen starting estimator, the classical OLS and
// Gaussian MLE, and the robust S, MM, BIP-S, BIP-MM and filtered-tau
// estimators.
//
// Each estimator is a pure function of an arma.Model returning an arma.Fit.
// The iterative estimators start from Hannan-Rissanen (MM-type estimators
// from their S-stage), express their objective as a differentiable cost over
// dual numbers, and hand it to the gonum optimizer through a common solver
// wrapper. Optimizer non-convergence is reported on the Fit, never as an
// error.
//
//	model, err := arma.NewModel(y, 1, 1)
//	if err != nil {
//	    ...
//	}
//	fit := estimators.BIPMM(model)
//	fmt.Println(fit)
package estimators
