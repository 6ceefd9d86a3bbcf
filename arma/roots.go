package arma

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Stationary reports whether the AR polynomial 1 - sum phi_k z^k has all
// roots strictly outside the unit disk. The roots are obtained as
// eigenvalues of the companion matrix of the reciprocal polynomial
// z^p - phi_1 z^{p-1} - ... - phi_p, which must then lie strictly inside
// the unit disk. An empty phi is stationary.
func Stationary(phi []float64) bool {
	if len(phi) == 0 {
		return true
	}
	top := make([]float64, len(phi))
	copy(top, phi)
	return rootsInsideUnitDisk(top)
}

// Invertible reports whether the MA polynomial 1 + sum theta_k z^k has all
// roots strictly outside the unit disk. An empty theta is invertible.
func Invertible(theta []float64) bool {
	if len(theta) == 0 {
		return true
	}
	top := make([]float64, len(theta))
	for i, v := range theta {
		top[i] = -v
	}
	return rootsInsideUnitDisk(top)
}

// rootsInsideUnitDisk builds the companion matrix with the given first row
// and reports whether every eigenvalue has modulus strictly below one.
func rootsInsideUnitDisk(top []float64) bool {
	n := len(top)
	c := mat.NewDense(n, n, nil)
	for j, v := range top {
		c.Set(0, j, v)
	}
	for i := 1; i < n; i++ {
		c.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return false
	}
	for _, v := range eig.Values(nil) {
		if cmplx.Abs(v) >= 1 {
			return false
		}
	}
	return true
}
