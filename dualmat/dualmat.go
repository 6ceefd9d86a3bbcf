// Package dualmat provides dense vector and matrix arithmetic over dual
// numbers (gonum.org/v1/gonum/num/dual).
//
// Cost functionals in robarma are evaluated with forward-mode automatic
// differentiation, so the state-space recursions need linear algebra whose
// scalars carry a derivative component. Elementwise operations act directly
// on dual scalars; factorizations are delegated to gonum/mat on the primal
// and tangent parts separately (for A = A0 + eps*A1, b = b0 + eps*b1 the
// solution of Ax = b is x0 = A0\b0, x1 = A0\(b1 - A1*x0)).
package dualmat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
)

// Dense is a row-major dense matrix of dual numbers.
type Dense struct {
	rows, cols int
	data       []dual.Number
}

// NewDense returns a zero r-by-c matrix.
func NewDense(r, c int) *Dense {
	if r <= 0 || c <= 0 {
		panic("dualmat: non-positive dimension")
	}
	return &Dense{rows: r, cols: c, data: make([]dual.Number, r*c)}
}

// Eye returns the n-by-n identity.
func Eye(n int) *Dense {
	m := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, dual.Number{Real: 1})
	}
	return m
}

// Dims returns the row and column counts.
func (m *Dense) Dims() (r, c int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) dual.Number { return m.data[i*m.cols+j] }

// Set assigns the element at row i, column j.
func (m *Dense) Set(i, j int, v dual.Number) { m.data[i*m.cols+j] = v }

// Col returns a copy of column j.
func (m *Dense) Col(j int) []dual.Number {
	out := make([]dual.Number, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.At(i, j)
	}
	return out
}

// T returns the transpose of a.
func T(a *Dense) *Dense {
	out := NewDense(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

// Add returns a + b.
func Add(a, b *Dense) *Dense {
	checkSameDims(a, b)
	out := NewDense(a.rows, a.cols)
	for i := range a.data {
		out.data[i] = dual.Add(a.data[i], b.data[i])
	}
	return out
}

// Sub returns a - b.
func Sub(a, b *Dense) *Dense {
	checkSameDims(a, b)
	out := NewDense(a.rows, a.cols)
	for i := range a.data {
		out.data[i] = dual.Sub(a.data[i], b.data[i])
	}
	return out
}

// Scale returns s*a.
func Scale(s dual.Number, a *Dense) *Dense {
	out := NewDense(a.rows, a.cols)
	for i := range a.data {
		out.data[i] = dual.Mul(s, a.data[i])
	}
	return out
}

// Mul returns the matrix product a*b.
func Mul(a, b *Dense) *Dense {
	if a.cols != b.rows {
		panic(fmt.Sprintf("dualmat: dimension mismatch %dx%d * %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := NewDense(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			var s dual.Number
			for k := 0; k < a.cols; k++ {
				s = dual.Add(s, dual.Mul(a.At(i, k), b.At(k, j)))
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// MulVec returns the matrix-vector product a*x.
func MulVec(a *Dense, x []dual.Number) []dual.Number {
	if a.cols != len(x) {
		panic("dualmat: dimension mismatch in MulVec")
	}
	out := make([]dual.Number, a.rows)
	for i := 0; i < a.rows; i++ {
		var s dual.Number
		for k := 0; k < a.cols; k++ {
			s = dual.Add(s, dual.Mul(a.At(i, k), x[k]))
		}
		out[i] = s
	}
	return out
}

// Outer returns the outer product x*y^T.
func Outer(x, y []dual.Number) *Dense {
	out := NewDense(len(x), len(y))
	for i := range x {
		for j := range y {
			out.Set(i, j, dual.Mul(x[i], y[j]))
		}
	}
	return out
}

// Dot returns the inner product of x and y.
func Dot(x, y []dual.Number) dual.Number {
	if len(x) != len(y) {
		panic("dualmat: dimension mismatch in Dot")
	}
	var s dual.Number
	for i := range x {
		s = dual.Add(s, dual.Mul(x[i], y[i]))
	}
	return s
}

// Kron returns the Kronecker product of a and b.
func Kron(a, b *Dense) *Dense {
	out := NewDense(a.rows*b.rows, a.cols*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			aij := a.At(i, j)
			for k := 0; k < b.rows; k++ {
				for l := 0; l < b.cols; l++ {
					out.Set(i*b.rows+k, j*b.cols+l, dual.Mul(aij, b.At(k, l)))
				}
			}
		}
	}
	return out
}

// FromMat lifts a float64 matrix to a dual matrix with zero tangent part.
func FromMat(a mat.Matrix) *Dense {
	r, c := a.Dims()
	out := NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, dual.Number{Real: a.At(i, j)})
		}
	}
	return out
}

// Real returns the primal part of a as a gonum matrix.
func Real(a *Dense) *mat.Dense {
	out := mat.NewDense(a.rows, a.cols, nil)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.Set(i, j, a.At(i, j).Real)
		}
	}
	return out
}

func checkSameDims(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic("dualmat: dimension mismatch")
	}
}
