// Package sim simulates ARMA(p,q) processes with Gaussian innovations,
// optionally contaminated with additive outliers. It is the test and demo
// collaborator of the estimators; estimation itself never depends on it.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sartorproj/robarma/arma"
)

// ErrNonStationary is returned when the AR parameters do not specify a
// stationary process.
var ErrNonStationary = errors.New("sim: AR parameters must specify a stationary process")

// ErrNonInvertible is returned when the MA parameters do not specify an
// invertible process.
var ErrNonInvertible = errors.New("sim: MA parameters must specify an invertible process")

// DefaultBurnIn is the number of leading observations discarded so the
// simulated process forgets its zero initial state.
const DefaultBurnIn = 100

// Simulate draws n observations from an ARMA(p,q) process with standard
// normal innovations, location mu, a burn-in of DefaultBurnIn and the given
// seed. A zero seed derives the seed from the clock; any other seed makes
// the output fully reproducible.
func Simulate(phi, theta []float64, mu float64, n int, seed int64) ([]float64, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	e := NormalInnovations(DefaultBurnIn+n, rng)
	return SimulateInnovations(phi, theta, mu, e, DefaultBurnIn)
}

// SimulateInnovations runs the ARMA recursion over caller-supplied
// innovations e and drops the first burnIn values, returning a series of
// length len(e) - burnIn. It validates the same pre-conditions as Simulate.
func SimulateInnovations(phi, theta []float64, mu float64, e []float64, burnIn int) ([]float64, error) {
	p := len(phi)
	q := len(theta)
	r := p
	if q > r {
		r = q
	}
	nn := len(e)
	if burnIn < 0 || nn <= burnIn {
		return nil, fmt.Errorf("sim: need more than burn_in=%d innovations, got %d", burnIn, nn)
	}
	if p > 0 && !arma.Stationary(phi) {
		return nil, ErrNonStationary
	}
	if q > 0 && !arma.Invertible(theta) {
		return nil, ErrNonInvertible
	}

	drift := mu
	if p > 0 {
		sum := 0.0
		for _, v := range phi {
			sum += v
		}
		drift = mu * (1 - sum)
	}

	x := make([]float64, nn)
	for i := r + 1; i < nn; i++ {
		v := drift + e[i]
		for k := 1; k <= p; k++ {
			v += phi[k-1] * x[i-k]
		}
		for k := 1; k <= q; k++ {
			v += theta[k-1] * e[i-k]
		}
		x[i] = v
	}
	return x[burnIn:], nil
}

// NormalInnovations draws n standard normal innovations from rng.
func NormalInnovations(n int, rng *rand.Rand) []float64 {
	e := make([]float64, n)
	for i := range e {
		e[i] = rng.NormFloat64()
	}
	return e
}

// InnovationsWithOutliers draws n standard normal innovations and replaces
// each with probability frac by an additive outlier of the given magnitude,
// signed at random. Used to exercise the robust estimators.
func InnovationsWithOutliers(n int, frac, magnitude float64, rng *rand.Rand) []float64 {
	e := NormalInnovations(n, rng)
	for i := range e {
		if rng.Float64() < frac {
			if rng.Float64() < 0.5 {
				e[i] += magnitude
			} else {
				e[i] -= magnitude
			}
		}
	}
	return e
}
