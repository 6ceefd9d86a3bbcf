package robust

import (
	"math"
	"sort"
)

const (
	// MADNConstant normalizes the MAD to be consistent with the standard
	// deviation under Gaussian data.
	MADNConstant = 0.6745

	// HuberK is the default clipping constant of the Huber psi-function
	// (95% efficiency at the Gaussian model).
	HuberK = 1.345

	// BisquareScaleK is the bisquare tuning constant giving a 50%
	// breakdown point for scale estimation with target b = 0.5.
	BisquareScaleK = 1.547645
)

// Median returns the median of x. For an even number of elements it is the
// mean of the two middle order statistics. x is not modified.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// MAD returns the median absolute deviation of x.
func MAD(x []float64) float64 {
	med := Median(x)
	dev := make([]float64, len(x))
	for i, v := range x {
		dev[i] = math.Abs(v - med)
	}
	return Median(dev)
}

// MADN returns the normalized median absolute deviation MAD(x)/0.6745.
func MADN(x []float64) float64 {
	return MAD(x) / MADNConstant
}

// Huber is the Huber psi-function: identity inside [-k, k], clipped to
// k*sign(x) outside.
func Huber(x, k float64) float64 {
	if math.Abs(x) <= k {
		return x
	}
	if x > 0 {
		return k
	}
	return -k
}
