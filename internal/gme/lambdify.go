package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"gonum.org/v1/gonum/mat"
)

// rayParams is the argument order shared by every lambdified geodesic
// callable.
var rayParams = []string{"rx", "rdotx", "rdotz", "varepsilon"}

// lambdifyRay compiles a scalar expression over the ray parameters.
func lambdifyRay(e algebra.Expr) RayFn {
	fn := algebra.Lambdify(e, rayParams)
	return func(rx, vx, vz, eps float64) float64 {
		return fn(rx, vx, vz, eps)
	}
}

// lambdifyMat compiles a matrix expression over the ray parameters,
// evaluating entrywise into a dense matrix.
func lambdifyMat(m *algebra.Matrix) MatFn {
	rows, cols := m.Dims()
	fns := make([]func(...float64) float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fns[i*cols+j] = algebra.Lambdify(m.At(i, j), rayParams)
		}
	}
	return func(rx, vx, vz, eps float64) *mat.Dense {
		out := mat.NewDense(rows, cols, nil)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.Set(i, j, fns[i*cols+j](rx, vx, vz, eps))
			}
		}
		return out
	}
}
