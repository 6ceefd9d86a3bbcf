// Package bianco implements the rho-, psi- and weight-functions of Bianco,
// Garcia Ben, Martinez and Yohai used by the filtered tau-estimator, along
// with the associated S-scale and tau-squared statistics.
package bianco

import (
	"math"

	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/robust"
)

const (
	// C1 is the clipping constant of Rho1 and Psi.
	C1 = 1.55
	// C2 is the outer knot of Rho2.
	C2 = 2.8
)

// Rho1 is the hard-redescending loss 3(x/c)^2 - 3(x/c)^4 + (x/c)^6 for
// |x| <= c with c = 1.55, and 1 beyond.
func Rho1(x dual.Number) dual.Number {
	if math.Abs(x.Real) > C1 {
		return dual.Number{Real: 1}
	}
	d := dual.Scale(1/C1, x)
	d2 := dual.Mul(d, d)
	d4 := dual.Mul(d2, d2)
	d6 := dual.Mul(d4, d2)
	s := dual.Add(dual.Scale(3, d2), dual.Scale(-3, d4))
	return dual.Add(s, d6)
}

// Rho2 is the bounded loss 0.14x^2 + 0.012x^4 - 0.0018x^6 for |x| <= 2.8,
// and 1 beyond.
func Rho2(x dual.Number) dual.Number {
	if math.Abs(x.Real) > C2 {
		return dual.Number{Real: 1}
	}
	x2 := dual.Mul(x, x)
	x4 := dual.Mul(x2, x2)
	x6 := dual.Mul(x4, x2)
	s := dual.Add(dual.Scale(0.14, x2), dual.Scale(0.012, x4))
	return dual.Add(s, dual.Scale(-0.0018, x6))
}

// Psi is the bounded odd score: identity inside [-1.55, 1.55], clipped to
// +-1.55 outside.
func Psi(x dual.Number) dual.Number {
	if math.Abs(x.Real) <= C1 {
		return x
	}
	if x.Real > 0 {
		return dual.Number{Real: C1}
	}
	return dual.Number{Real: -C1}
}

// W is the redescending weight Psi(x)/x, with W(0) = 0.
func W(x dual.Number) dual.Number {
	if x.Real == 0 {
		return dual.Number{}
	}
	return dual.Mul(Psi(x), dual.Inv(x))
}

// S is the M-scale of u under Rho1 with target b = 0.5.
func S(u []dual.Number) dual.Number {
	return robust.Scale(u, 0.5, Rho1)
}

// Tau2 is the tau-squared statistic s(u)^2 * sum Rho2(u/s(u)).
func Tau2(u []dual.Number) dual.Number {
	sn := S(u)
	inv := dual.Inv(sn)
	var sum dual.Number
	for _, v := range u {
		sum = dual.Add(sum, Rho2(dual.Mul(v, inv)))
	}
	return dual.Mul(dual.Mul(sn, sn), sum)
}
