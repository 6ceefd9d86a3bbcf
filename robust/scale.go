package robust

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/num/dual"
)

const (
	scaleTol     = 1e-6
	scaleMaxIter = 100
)

// RhoFunc is a differentiable rho-function applied elementwise by the
// M-scale iteration.
type RhoFunc func(dual.Number) dual.Number

// Bisquare is the Tukey bisquare rho-function normalized to max 1:
// 1 - (1 - (x/k)^2)^3 inside [-k, k] and 1 outside.
func Bisquare(x dual.Number, k float64) dual.Number {
	if math.Abs(x.Real) > k {
		return dual.Number{Real: 1}
	}
	d := dual.Scale(1/k, x)
	one := dual.Number{Real: 1}
	inner := dual.Sub(one, dual.Mul(d, d))
	return dual.Sub(one, dual.Mul(inner, dual.Mul(inner, inner)))
}

// Scale computes the M-scale of x: the solution sigma of
// mean rho(x/sigma) = b, by the fixed-point iteration
// sigma <- sigma * sqrt(mean rho(x/sigma) / b), started at median(|x|)/0.6745.
// x is assumed centered. If the starting value is zero (more than half of x
// exactly zero) the degenerate scale 0 is returned.
func Scale(x []dual.Number, b float64, rho RhoFunc) dual.Number {
	s0 := dual.Scale(1/MADNConstant, medianAbs(x))
	if s0.Real == 0 {
		return dual.Number{}
	}
	for i := 0; i < scaleMaxIter; i++ {
		m := meanRho(x, s0, rho)
		s1 := dual.Sqrt(dual.Scale(1/b, dual.Mul(dual.Mul(s0, s0), m)))
		err := math.Abs(s1.Real-s0.Real) / math.Abs(s0.Real)
		s0 = s1
		if err < scaleTol {
			break
		}
	}
	return s0
}

// ScaleReal is the float64 form of Scale.
func ScaleReal(x []float64, b float64, rho RhoFunc) float64 {
	return Scale(lift(x), b, rho).Real
}

// MScale is the default M-scale: bisquare rho with k = 1.547645 and target
// b = 0.5, the 50% breakdown configuration used for the model scale.
func MScale(x []float64) float64 {
	return ScaleReal(x, 0.5, func(v dual.Number) dual.Number {
		return Bisquare(v, BisquareScaleK)
	})
}

func meanRho(x []dual.Number, sigma dual.Number, rho RhoFunc) dual.Number {
	inv := dual.Inv(sigma)
	var sum dual.Number
	for _, v := range x {
		sum = dual.Add(sum, rho(dual.Mul(v, inv)))
	}
	return dual.Scale(1/float64(len(x)), sum)
}

// medianAbs returns the median of |x|, ordering by the primal part.
func medianAbs(x []dual.Number) dual.Number {
	n := len(x)
	if n == 0 {
		return dual.Number{Real: math.NaN()}
	}
	a := make([]dual.Number, n)
	for i, v := range x {
		if v.Real < 0 {
			a[i] = dual.Scale(-1, v)
		} else {
			a[i] = v
		}
	}
	sort.Slice(a, func(i, j int) bool { return a[i].Real < a[j].Real })
	if n%2 == 0 {
		return dual.Scale(0.5, dual.Add(a[n/2-1], a[n/2]))
	}
	return a[n/2]
}

func lift(x []float64) []dual.Number {
	d := make([]dual.Number, len(x))
	for i, v := range x {
		d[i] = dual.Number{Real: v}
	}
	return d
}
