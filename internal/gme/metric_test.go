package gme

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/geomech/erode/internal/algebra"
)

// evalMat evaluates a symbolic matrix entrywise at the bindings.
func evalMat(t *testing.T, m *algebra.Matrix, env map[string]float64) *mat.Dense {
	t.Helper()
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, algebra.EvalF(m.At(i, j), env))
		}
	}
	return out
}

var metricEnv = map[string]float64{"varphi_r": 1.3, "px": 0.6, "pz": -0.8}

func TestCoMetricSymmetric(t *testing.T) {
	en := newDefault(t)
	gs := evalMat(t, en.Eqns.Gstar.RHS, metricEnv)
	assert.InDelta(t, gs.At(0, 1), gs.At(1, 0), 1e-12)
}

func TestMetricInvertsCoMetric(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns
	require.True(t, q.G.Ok(), q.G.Reason())

	gs := evalMat(t, q.Gstar.RHS, metricEnv)
	g := evalMat(t, q.G.Mat, metricEnv)

	var prod mat.Dense
	prod.Mul(g, gs)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, prod.At(i, j), 1e-9, "entry (%d,%d)", i, j)
		}
	}
}

func TestDeterminantMatchesEntries(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	gs := evalMat(t, q.Gstar.RHS, metricEnv)
	det := algebra.EvalF(q.DetGstar.RHS, metricEnv)
	assert.InDelta(t, mat.Det(gs), det, 1e-9)
}

func TestEigenvaluesSatisfyCharacteristic(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns
	require.True(t, q.GstarEigen.Ok(), q.GstarEigen.Reason())

	// Evaluate over position: the eigendecomposition is reported with
	// the flow model substituted in.
	env := map[string]float64{
		"rx": 0.4, "x_1": 1, "varphi_0": 1.3, "varepsilon": 0.1, "mu": 0.75,
		"px": 0.6, "pz": -0.8,
	}
	posEnv := map[string]float64{
		"varphi_r": algebra.EvalF(en.Eqns.VarphiRx.RHS, env),
		"px":       0.6, "pz": -0.8,
	}
	gs := evalMat(t, q.Gstar.RHS, posEnv)
	tr := gs.At(0, 0) + gs.At(1, 1)
	det := mat.Det(gs)
	for i := 0; i < 2; i++ {
		lam := algebra.EvalF(q.GstarEigen.Vals[i], env)
		assert.InDelta(t, 0, lam*lam-tr*lam+det, 1e-9, "eigenvalue %d", i)
	}
}

func TestTangentTiltMetricAtEtaOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tilt = TiltTangent
	cfg.Eta = big.NewRat(1, 1)
	en, err := New(cfg)
	require.NoError(t, err)

	// Only the sine tilt degenerates at eta = 1.
	assert.True(t, en.Eqns.G.Ok(), en.Eqns.G.Reason())
	assert.True(t, en.Eqns.TanbetaAlpha.Ok(), en.Eqns.TanbetaAlpha.Reason())
}
