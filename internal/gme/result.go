package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"gonum.org/v1/gonum/mat"
)

// A derivation stage can fail for a specific parameter combination while
// the rest of the pipeline stays valid. Stage outputs are therefore
// tagged: Ok reports whether the value was derived, and Reason carries
// the diagnostic when it was not.

// EqnResult is a derived equation or the reason it is unavailable.
type EqnResult struct {
	Eqn    *algebra.Equation
	reason string
}

func (r EqnResult) Ok() bool { return r.Eqn != nil }
func (r EqnResult) Reason() string { return r.reason }

func okEqn(eq *algebra.Equation) EqnResult { return EqnResult{Eqn: eq} }
func noEqn(reason string) EqnResult { return EqnResult{reason: reason} }

// MatResult is a derived matrix equation or the reason it is unavailable.
type MatResult struct {
	Mat    *algebra.Matrix
	reason string
}

func (r MatResult) Ok() bool { return r.Mat != nil }
func (r MatResult) Reason() string { return r.reason }

func okMat(m *algebra.Matrix) MatResult { return MatResult{Mat: m} }
func noMat(reason string) MatResult { return MatResult{reason: reason} }

// NumResult is a derived numeric value or the reason it is unavailable.
type NumResult struct {
	Val    float64
	ok     bool
	reason string
}

func (r NumResult) Ok() bool { return r.ok }
func (r NumResult) Reason() string { return r.reason }

func okNum(v float64) NumResult { return NumResult{Val: v, ok: true} }
func noNum(reason string) NumResult { return NumResult{reason: reason} }

// MatFn is a lambdified matrix over (rx, rdotx, rdotz, varepsilon).
type MatFn func(rx, vx, vz, eps float64) *mat.Dense

// MatFnResult is a lambdified matrix callable or the reason it is
// unavailable.
type MatFnResult struct {
	Fn     MatFn
	reason string
}

func (r MatFnResult) Ok() bool { return r.Fn != nil }
func (r MatFnResult) Reason() string { return r.reason }

// RayFn is a lambdified scalar over (rx, rdotx, rdotz, varepsilon).
type RayFn func(rx, vx, vz, eps float64) float64

// RayFnResult is a lambdified scalar callable or the reason it is
// unavailable.
type RayFnResult struct {
	Fn     RayFn
	reason string
}

func (r RayFnResult) Ok() bool { return r.Fn != nil }
func (r RayFnResult) Reason() string { return r.reason }

// ChristoffelResult indexes the lambdified connection coefficients
// Gamma^k_ij over (rx, rdotx, rdotz, varepsilon).
type ChristoffelResult struct {
	fns    [2][2][2]RayFn
	ok     bool
	reason string
}

func (r ChristoffelResult) Ok() bool { return r.ok }
func (r ChristoffelResult) Reason() string { return r.reason }

// At returns the lambdified coefficient with lower indices i, j and
// upper index k.
func (r ChristoffelResult) At(i, j, k int) RayFn { return r.fns[i][j][k] }

// Notice records a stage that was skipped or degraded and why.
type Notice struct {
	Stage  string
	Reason string
}
