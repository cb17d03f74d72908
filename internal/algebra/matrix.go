package algebra

import (
	"fmt"
	"strings"
)

// Matrix is a dense matrix of expressions.
type Matrix struct {
	rows, cols int
	data       []Expr
}

func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{rows: rows, cols: cols, data: make([]Expr, rows*cols)}
	for i := range m.data {
		m.data[i] = N(0)
	}
	return m
}

// MatrixOf builds a matrix from row slices.
func MatrixOf(rows ...[]Expr) *Matrix {
	m := NewMatrix(len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != m.cols {
			panic("algebra: ragged matrix rows")
		}
		for j, e := range r {
			m.Set(i, j, e)
		}
	}
	return m
}

// ColVec builds a column vector.
func ColVec(entries ...Expr) *Matrix {
	m := NewMatrix(len(entries), 1)
	for i, e := range entries {
		m.Set(i, 0, e)
	}
	return m
}

func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }
func (m *Matrix) At(i, j int) Expr { return m.data[i*m.cols+j] }
func (m *Matrix) Set(i, j int, e Expr) { m.data[i*m.cols+j] = e }

func (m *Matrix) Map(f func(Expr) Expr) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = f(m.data[i])
	}
	return out
}

func (m *Matrix) Simplify() *Matrix { return m.Map(func(e Expr) Expr { return e.Simplify() }) }

func (m *Matrix) SubAll(subs map[string]Expr) *Matrix {
	return m.Map(func(e Expr) Expr { return SubMap(e, subs) })
}

func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}

func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

func (m *Matrix) MulMat(o *Matrix) *Matrix {
	if m.cols != o.rows {
		panic("algebra: matrix dimension mismatch")
	}
	out := NewMatrix(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			terms := make([]Expr, m.cols)
			for k := 0; k < m.cols; k++ {
				terms[k] = MulOf(m.At(i, k), o.At(k, j))
			}
			out.Set(i, j, AddOf(terms...))
		}
	}
	return out
}

func (m *Matrix) Scale(e Expr) *Matrix {
	return m.Map(func(x Expr) Expr { return MulOf(e, x) })
}

// Det is the determinant via cofactor expansion along the first row.
func (m *Matrix) Det() Expr {
	if m.rows != m.cols {
		panic("algebra: determinant of non-square matrix")
	}
	switch m.rows {
	case 1:
		return m.At(0, 0)
	case 2:
		return SubE(MulOf(m.At(0, 0), m.At(1, 1)), MulOf(m.At(0, 1), m.At(1, 0)))
	}
	terms := make([]Expr, 0, m.cols)
	for j := 0; j < m.cols; j++ {
		sign := N(1)
		if j%2 == 1 {
			sign = N(-1)
		}
		terms = append(terms, MulOf(sign, m.At(0, j), m.minor(0, j).Det()))
	}
	return AddOf(terms...)
}

func (m *Matrix) minor(ri, rj int) *Matrix {
	out := NewMatrix(m.rows-1, m.cols-1)
	oi := 0
	for i := 0; i < m.rows; i++ {
		if i == ri {
			continue
		}
		oj := 0
		for j := 0; j < m.cols; j++ {
			if j == rj {
				continue
			}
			out.Set(oi, oj, m.At(i, j))
			oj++
		}
		oi++
	}
	return out
}

// Inverse is the adjugate over the determinant.
func (m *Matrix) Inverse() (*Matrix, error) {
	det := m.Det().Simplify()
	if n, ok := det.(*Num); ok && n.IsZero() {
		return nil, fmt.Errorf("algebra: singular matrix")
	}
	invDet := PowOf(det, N(-1))
	out := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			sign := N(1)
			if (i+j)%2 == 1 {
				sign = N(-1)
			}
			// Adjugate transposes the cofactor matrix.
			out.Set(j, i, MulOf(sign, m.minor(i, j).Det(), invDet))
		}
	}
	return out, nil
}

// Hessian forms the matrix of second partials in the given symbol order.
func Hessian(e Expr, names []string) *Matrix {
	firsts := make([]Expr, len(names))
	for i, n := range names {
		firsts[i] = e.Diff(n)
	}
	out := NewMatrix(len(names), len(names))
	for i := range names {
		for j, n := range names {
			out.Set(i, j, firsts[i].Diff(n).Simplify())
		}
	}
	return out
}

// Eigen2 decomposes a 2x2 matrix symbolically: eigenvalues in
// [minus, plus] branch order with matching unnormalized eigenvectors.
func (m *Matrix) Eigen2() (vals [2]Expr, vecs [2]*Matrix, err error) {
	if m.rows != 2 || m.cols != 2 {
		return vals, vecs, fmt.Errorf("algebra: Eigen2 needs a 2x2 matrix")
	}
	tr := AddOf(m.At(0, 0), m.At(1, 1))
	roots := solveQuadratic(N(1), Neg(tr), m.Det())
	for k, lam := range roots {
		vals[k] = lam
		// (a - lam) v0 + b v1 = 0 gives v = (b, lam - a) when b != 0.
		b := m.At(0, 1).Simplify()
		if n, ok := b.(*Num); ok && n.IsZero() {
			vecs[k] = ColVec(SubE(lam, m.At(1, 1)).Simplify(), m.At(1, 0))
			continue
		}
		vecs[k] = ColVec(b, SubE(lam, m.At(0, 0)).Simplify())
	}
	return vals, vecs, nil
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.At(i, j).String())
		}
		sb.WriteString("]")
	}
	return sb.String()
}

func (m *Matrix) LaTeX() string {
	var sb strings.Builder
	sb.WriteString(`\begin{pmatrix}`)
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(` \\ `)
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(m.At(i, j).LaTeX())
		}
	}
	sb.WriteString(`\end{pmatrix}`)
	return sb.String()
}
