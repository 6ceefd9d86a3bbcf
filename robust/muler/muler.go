// Package muler implements the bounded rho-functions and the
// bounded-innovation-propagation correction eta of Muler, Pena and Yohai,
// used by the S-, MM-, BIP-S- and BIP-MM-estimators.
//
// The piecewise polynomials are constructed so that value and first
// derivative agree at the knots; branching on the primal part of the dual
// argument therefore preserves derivative propagation.
package muler

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// RhoMax is the supremum of Rho2, reached for |x| > 3. The S-estimation
// target is RhoMax/2.
const RhoMax = 3.25

// rho1ScaleK rescales Rho2 into the tighter Rho1 used for scale estimation.
const rho1ScaleK = 0.405

// Rho2 is the C^2 bounded Tukey-like loss: x^2/2 for |x| <= 2, a degree-8
// even polynomial on (2, 3], and the constant 3.25 beyond.
func Rho2(x dual.Number) dual.Number {
	ax := math.Abs(x.Real)
	switch {
	case ax <= 2:
		return dual.Scale(0.5, dual.Mul(x, x))
	case ax <= 3:
		x2 := dual.Mul(x, x)
		x4 := dual.Mul(x2, x2)
		x6 := dual.Mul(x4, x2)
		x8 := dual.Mul(x4, x4)
		s := dual.Add(dual.Scale(0.002, x8), dual.Scale(-0.052, x6))
		s = dual.Add(s, dual.Scale(0.432, x4))
		s = dual.Add(s, dual.Scale(-0.972, x2))
		return dual.Add(s, dual.Number{Real: 1.792})
	default:
		return dual.Number{Real: RhoMax}
	}
}

// Rho1 is Rho2 with tighter clipping, Rho1(x) = Rho2(x/0.405).
func Rho1(x dual.Number) dual.Number {
	return Rho2(dual.Scale(1/rho1ScaleK, x))
}

// Eta is the odd, bounded, redescending BIP correction: identity for
// |x| <= 2, a degree-7 odd polynomial on (2, 3], and zero beyond.
func Eta(x dual.Number) dual.Number {
	ax := math.Abs(x.Real)
	switch {
	case ax <= 2:
		return x
	case ax <= 3:
		x2 := dual.Mul(x, x)
		x3 := dual.Mul(x2, x)
		x5 := dual.Mul(x3, x2)
		x7 := dual.Mul(x5, x2)
		s := dual.Add(dual.Scale(0.016, x7), dual.Scale(-0.312, x5))
		s = dual.Add(s, dual.Scale(1.728, x3))
		return dual.Add(s, dual.Scale(-1.944, x))
	default:
		return dual.Number{}
	}
}
