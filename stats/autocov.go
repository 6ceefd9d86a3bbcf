package stats

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/robarma/robust"
)

// AutocovMatrix builds the m-by-n sample autocovariance matrix of y, with
// entry (i, j) holding the lag-|i-j| autocovariance
//
//	gamma(h) = (1/(N-h)) sum_t yc_t yc_{t+h}
//
// of the mean-centered series. Entries whose lag reaches the series length
// are zero.
func AutocovMatrix(y []float64, m, n int) *mat.Dense {
	yc := make([]float64, len(y))
	mean := meanOf(y)
	for i, v := range y {
		yc[i] = v - mean
	}
	return lagProducts(yc, m, n)
}

// RobustAutocovMatrix is the robust counterpart of AutocovMatrix: the
// series is centered by its median and passed through the Huber
// psi-function before the bilinear sums, bounding the influence of
// outlying observations.
func RobustAutocovMatrix(y []float64, m, n int) *mat.Dense {
	med := robust.Median(y)
	psi := make([]float64, len(y))
	for i, v := range y {
		psi[i] = robust.Huber(v-med, robust.HuberK)
	}
	return lagProducts(psi, m, n)
}

func lagProducts(yc []float64, m, n int) *mat.Dense {
	N := len(yc)
	a := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			h := i - j
			if h < 0 {
				h = -h
			}
			if N-h <= 0 {
				continue
			}
			sum := 0.0
			for t := 0; t < N-h; t++ {
				sum += yc[t] * yc[t+h]
			}
			a.Set(i, j, sum/float64(N-h))
		}
	}
	return a
}
