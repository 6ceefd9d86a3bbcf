// Package robarma provides robust parameter estimation for ARMA(p,q)
// time series models.
//
// RobARMA estimates the AR coefficients phi, MA coefficients theta and the
// location mu of a univariate ARMA process. Alongside the classical OLS and
// Gaussian maximum-likelihood estimators it implements a family of robust
// estimators that stay well-behaved when the series carries additive or
// innovation outliers: the S- and MM-estimators of Muler, Pena and Yohai,
// their bounded-innovation-propagation variants BIP-S and BIP-MM, and the
// filtered tau-estimator of Bianco, Garcia Ben, Martinez and Yohai.
//
// # Quick Start
//
// Fit a contaminated ARMA(1,1) series with the BIP-MM estimator:
//
//	model, err := arma.NewModel(y, 1, 1)
//	if err != nil {
//		return err
//	}
//	fit := estimators.BIPMM(model)
//	fmt.Println(fit)
//
// Every estimator starts from the closed-form Hannan-Rissanen fit and
// reports convergence, the final cost and the initial values used.
//
// # Packages
//
// The library is organized into the following packages:
//
//   - arma: model validation, residual recurrences, parameter containers
//   - estimators: Hannan-Rissanen, OLS, MLE, filtered-tau, S, MM, BIP-S, BIP-MM
//   - robust: M-scale estimation and the rho-function families
//   - dualmat: dense linear algebra over forward-mode dual numbers
//   - stats: autocovariance matrices, ACF/PACF, residual diagnostics
//   - sim: ARMA process simulation with optional outlier contamination
//   - timeseries: series container and CSV loading
//
// # References
//
//   - Muler, N., Pena, D., & Yohai, V.J. (2009). Robust estimation for ARMA models
//   - Bianco, A., Garcia Ben, M., Martinez, E., & Yohai, V.J. (1996). Robust
//     procedures for regression models with ARIMA errors
//   - Durbin, J., & Koopman, S.J. (2012). Time Series Analysis by State Space Methods
package robarma
