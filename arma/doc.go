// Package arma defines the data model for ARMA(p,q) estimation: the
// immutable Model holding the observed series and its robust location and
// scale, the Params triple (phi, theta, mu), residual recurrences (classical
// and bounded-innovation-propagation), the causal representation, root
// conditions for stationarity and invertibility, and the Fit/Result types
// returned by the estimators.
package arma
