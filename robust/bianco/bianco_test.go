package bianco

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/num/dual"
)

func TestRho1Bounds(t *testing.T) {
	if got := Rho1(dual.Number{}).Real; got != 0 {
		t.Errorf("Expected Rho1(0) = 0, got %f", got)
	}
	// 3d^2 - 3d^4 + d^6 at d = 1 is exactly 1: continuous at the knot.
	at := Rho1(dual.Number{Real: C1}).Real
	if math.Abs(at-1) > 1e-12 {
		t.Errorf("Expected Rho1(C1) = 1, got %f", at)
	}
	if got := Rho1(dual.Number{Real: 4}).Real; got != 1 {
		t.Errorf("Expected Rho1 beyond C1 = 1, got %f", got)
	}
}

func TestRho2Bounded(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1, 2, 2.8, 3, 10} {
		got := Rho2(dual.Number{Real: x}).Real
		if got < 0 || got > 1+1e-12 {
			t.Errorf("Rho2(%f) = %f outside [0, 1]", x, got)
		}
	}
}

func TestPsi(t *testing.T) {
	tests := []struct {
		x, expected float64
	}{
		{0, 0},
		{1, 1},
		{-1.2, -1.2},
		{C1, C1},
		{2, C1},
		{-5, -C1},
	}
	for _, tt := range tests {
		if got := Psi(dual.Number{Real: tt.x}).Real; math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Psi(%f): expected %f, got %f", tt.x, tt.expected, got)
		}
	}
}

func TestW(t *testing.T) {
	if got := W(dual.Number{}).Real; got != 0 {
		t.Errorf("Expected W(0) = 0, got %f", got)
	}
	// Inside the clipping region the weight is one.
	if got := W(dual.Number{Real: 0.5}).Real; math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected W(0.5) = 1, got %f", got)
	}
	// Outside it redescends as C1/|x|.
	if got := W(dual.Number{Real: 3.1}).Real; math.Abs(got-C1/3.1) > 1e-12 {
		t.Errorf("Expected W(3.1) = %f, got %f", C1/3.1, got)
	}
}

func TestSScale(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	u := make([]dual.Number, 400)
	for i := range u {
		u[i] = dual.Number{Real: rng.NormFloat64()}
	}
	s := S(u).Real
	if s <= 0 {
		t.Fatalf("Expected positive S-scale, got %f", s)
	}
	// The defining equation mean Rho1(u/s) = 0.5 holds at the solution.
	mean := 0.0
	for _, v := range u {
		mean += Rho1(dual.Number{Real: v.Real / s}).Real
	}
	mean /= float64(len(u))
	if math.Abs(mean-0.5) > 1e-4 {
		t.Errorf("S-scale fixed point violated: mean rho = %f", mean)
	}
	t.Logf("S-scale of standard normal sample: %f", s)
}

func TestTau2(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	u := make([]dual.Number, 400)
	for i := range u {
		u[i] = dual.Number{Real: rng.NormFloat64()}
	}
	tau2 := Tau2(u).Real
	if tau2 <= 0 {
		t.Fatalf("Expected positive tau-squared, got %f", tau2)
	}

	// Scale equivariance: tau^2(c*u) = c^2 * tau^2(u).
	scaled := make([]dual.Number, len(u))
	for i, v := range u {
		scaled[i] = dual.Scale(2, v)
	}
	ratio := Tau2(scaled).Real / tau2
	if math.Abs(ratio-4) > 0.05 {
		t.Errorf("Expected scale equivariance ratio 4, got %f", ratio)
	}
}
