package arma

import "gonum.org/v1/gonum/num/dual"

// causalLen is the truncation order of the causal representation.
const causalLen = 100

// Causal computes the leading coefficients lambda_1..lambda_99 of the
// causal representation lambda(B) = theta(B)/phi(B) via the recurrence
//
//	lambda_k = sum_j phi_j lambda_{k-j} - theta_k
//
// with lambda_0 = 1 and lambda_k = 0 for k < 0. The leading 1 is omitted
// from the result.
func Causal(phi, theta []dual.Number) []dual.Number {
	p := len(phi)
	q := len(theta)

	lambda := make([]dual.Number, causalLen)
	lambda[0] = dual.Number{Real: 1}

	for k := 1; k < causalLen; k++ {
		var s dual.Number
		for j := 1; j <= p && j <= k; j++ {
			s = dual.Add(s, dual.Mul(phi[j-1], lambda[k-j]))
		}
		if k <= q {
			s = dual.Sub(s, theta[k-1])
		}
		lambda[k] = s
	}
	return lambda[1:]
}
