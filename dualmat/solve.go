package dualmat

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
)

// Solve returns x with a*x = b in the least-squares sense. The primal
// system is solved first, then the tangent system
// A0*x1 = b1 - A1*x0 for the derivative part. An error is returned when the
// primal system has no usable solution (near-singular a).
func Solve(a *Dense, b []dual.Number) ([]dual.Number, error) {
	if a.rows != len(b) {
		panic("dualmat: dimension mismatch in Solve")
	}
	a0, a1 := split(a)
	b0 := mat.NewDense(len(b), 1, nil)
	b1 := mat.NewDense(len(b), 1, nil)
	for i, v := range b {
		b0.Set(i, 0, v.Real)
		b1.Set(i, 0, v.Emag)
	}

	var x0 mat.Dense
	if err := x0.Solve(a0, b0); err != nil {
		return nil, err
	}

	// rhs of the tangent system: b1 - A1*x0
	var ax mat.Dense
	ax.Mul(a1, &x0)
	var r1 mat.Dense
	r1.Sub(b1, &ax)

	var x1 mat.Dense
	if err := x1.Solve(a0, &r1); err != nil {
		return nil, err
	}

	out := make([]dual.Number, a.cols)
	for i := range out {
		out[i] = dual.Number{Real: x0.At(i, 0), Emag: x1.At(i, 0)}
	}
	return out, nil
}

func split(a *Dense) (re, em *mat.Dense) {
	re = mat.NewDense(a.rows, a.cols, nil)
	em = mat.NewDense(a.rows, a.cols, nil)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			v := a.At(i, j)
			re.Set(i, j, v.Real)
			em.Set(i, j, v.Emag)
		}
	}
	return re, em
}
