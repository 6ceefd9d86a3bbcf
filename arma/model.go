package arma

import (
	"fmt"
	"math"

	"github.com/sartorproj/robarma/robust"
)

// Model holds an observed series together with the ARMA order and the
// robust location and scale statistics every estimator starts from. It is
// immutable after construction and may be shared across estimator calls.
type Model struct {
	// Y is the observed series.
	Y []float64
	// P and Q are the AR and MA orders.
	P, Q int
	// N is the series length and R = max(P, Q).
	N, R int
	// Mu is the median of Y.
	Mu float64
	// Sigma is the M-scale of Y - Mu (bisquare, 50% breakdown).
	Sigma float64
}

// NewModel validates the inputs and computes the robust location and scale.
// The series must be finite with
// n >= max(2p+1, 2q+1) + max(p+1, q+1), orders non-negative with p+q >= 1.
func NewModel(y []float64, p, q int) (*Model, error) {
	if p < 0 {
		return nil, fmt.Errorf("arma: order p must be non-negative, got %d", p)
	}
	if q < 0 {
		return nil, fmt.Errorf("arma: order q must be non-negative, got %d", q)
	}
	if p+q < 1 {
		return nil, fmt.Errorf("arma: at least one of p, q must be positive, got p=%d q=%d", p, q)
	}
	n := len(y)
	minLen := maxInt(2*p+1, 2*q+1) + maxInt(p+1, q+1)
	if n < minLen {
		return nil, fmt.Errorf("arma: series of length %d is too short for ARMA(%d,%d), need at least %d", n, p, q, minLen)
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("arma: series contains non-finite value %v at index %d", v, i)
		}
	}

	mu := robust.Median(y)
	centered := make([]float64, n)
	for i, v := range y {
		centered[i] = v - mu
	}
	sigma := robust.MScale(centered)
	if sigma <= 0 {
		return nil, fmt.Errorf("arma: series has degenerate scale %v, cannot estimate", sigma)
	}

	yy := make([]float64, n)
	copy(yy, y)
	return &Model{
		Y:     yy,
		P:     p,
		Q:     q,
		N:     n,
		R:     maxInt(p, q),
		Mu:    mu,
		Sigma: sigma,
	}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
