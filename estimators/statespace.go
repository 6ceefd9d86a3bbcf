package estimators

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/dualmat"
)

// stateSpace puts an ARMA(p,q) model in state-space form with state
// dimension r = max(p, q+1): companion-like transition F carrying phi in
// its first column, observation weights H = (1, theta), selector z = e_1
// and drift c = (mu*(1 - sum phi), 0, ..., 0).
type stateSpace struct {
	model *arma.Model
	r     int
}

func newStateSpace(m *arma.Model) stateSpace {
	return stateSpace{model: m, r: maxInt(m.P, m.Q+1)}
}

func (ss stateSpace) matF(phi []dual.Number) *dualmat.Dense {
	f := dualmat.NewDense(ss.r, ss.r)
	for i := 0; i < ss.r-1; i++ {
		f.Set(i, i+1, dual.Number{Real: 1})
	}
	for i, p := range phi {
		f.Set(i, 0, p)
	}
	return f
}

func (ss stateSpace) vecH(theta []dual.Number) []dual.Number {
	h := make([]dual.Number, ss.r)
	h[0] = dual.Number{Real: 1}
	copy(h[1:], theta)
	return h
}

func (ss stateSpace) vecZ() []dual.Number {
	z := make([]dual.Number, ss.r)
	z[0] = dual.Number{Real: 1}
	return z
}

func (ss stateSpace) vecC(phi []dual.Number, mu dual.Number) []dual.Number {
	one := dual.Number{Real: 1}
	var sum dual.Number
	for _, p := range phi {
		sum = dual.Add(sum, p)
	}
	c := make([]dual.Number, ss.r)
	c[0] = dual.Mul(mu, dual.Sub(one, sum))
	return c
}

// stationaryP solves the discrete Lyapunov equation P = F P F^T + H H^T for
// the stationary state covariance, via the linear system
// (I - F kron F) vec(P) = vec(H H^T) and a least-squares solve. The solve
// fails when F has unit-modulus eigenvalues (non-stationary parameters).
func (ss stateSpace) stationaryP(f *dualmat.Dense, h []dual.Number) (*dualmat.Dense, error) {
	r := ss.r
	s := dualmat.Sub(dualmat.Eye(r*r), dualmat.Kron(f, f))
	hh := dualmat.Outer(h, h)
	v := make([]dual.Number, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			v[i*r+j] = hh.At(i, j)
		}
	}
	x, err := dualmat.Solve(s, v)
	if err != nil {
		return nil, err
	}
	p := dualmat.NewDense(r, r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			p.Set(i, j, x[i*r+j])
		}
	}
	return p, nil
}
