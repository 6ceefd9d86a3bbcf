// Package stats provides the series-level statistics used around ARMA
// estimation: autocovariance matrices (sample and Huberized), the
// autocorrelation and partial autocorrelation functions, and residual
// diagnostics.
//
// # Autocovariance matrices
//
// Build the matrices that seed the Kalman state covariance:
//
//	// Sample autocovariance matrix, (i,j) holding gamma(|i-j|)
//	g := stats.AutocovMatrix(y, r, r)
//
//	// Robust variant: median-centered, Huberized before the bilinear sums
//	gr := stats.RobustAutocovMatrix(y, r, r)
//
// # Autocorrelation
//
// Identify candidate orders before fitting:
//
//	acf := stats.ACF(y, 20)
//	pacf := stats.PACF(y, 20)
//
// # Residual diagnostics
//
// Test fitted-model residuals for leftover autocorrelation:
//
//	lb := stats.LjungBox(residuals, 10, p+q)
//	if lb.PValue > 0.05 {
//	    // residuals look like white noise
//	}
//
//	dw := stats.DurbinWatson(residuals)
package stats
