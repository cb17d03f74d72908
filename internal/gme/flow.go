package gme

import (
	"math/big"

	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveFlowModel builds the erodibility varphi as a function of
// distance x upstream from the right boundary, then re-expresses the
// configured variant over the horizontal position via x = x_1 - rx.
//
// The ramp model is varphi_0*((x/x_1)^(2*mu) + varepsilon). The
// ramp-flat model splices a logistic plateau onto the ramp; for
// mu = 1/2 the logistic integral enters linearly, otherwise the
// smoothed break is raised to 2*mu. Every variant is derived so its
// closed form can be inspected regardless of which one is configured.
func (en *Engine) deriveFlowModel() {
	q := &en.Eqns
	twoMu := algebra.MulOf(algebra.N(2), vocab.Mu)

	q.VarphiModelRamp = algebra.Eq(vocab.VarphiR, algebra.MulOf(
		vocab.Varphi0,
		algebra.AddOf(
			algebra.PowOf(algebra.Div(vocab.X, vocab.X1), twoMu),
			vocab.Epsilon,
		),
	))

	step := algebra.PowOf(algebra.AddOf(
		algebra.N(1),
		algebra.Exp(algebra.Neg(algebra.Div(vocab.X, vocab.XSigma))),
	), algebra.N(-1))
	q.VarphiModelRampFlat = algebra.Eq(vocab.VarphiR, algebra.MulOf(
		vocab.Varphi0,
		algebra.AddOf(
			algebra.MulOf(algebra.Div(vocab.Chi, vocab.X1), mustIntegrate(step, "x")),
			algebra.N(1),
		),
	))

	// Smoothed break at x_h, raised to the ramp exponent.
	step = algebra.PowOf(algebra.AddOf(
		algebra.N(1),
		algebra.Exp(algebra.Div(
			algebra.SubE(algebra.SubE(vocab.X1, vocab.XH), vocab.X),
			vocab.XSigma,
		)),
	), algebra.N(-1))
	brk := algebra.AddOf(
		algebra.MulOf(algebra.Div(vocab.Chi, vocab.X1), mustIntegrate(step, "x")),
		algebra.Neg(algebra.MulOf(
			vocab.Chi,
			algebra.SubE(algebra.N(1), algebra.Div(vocab.XH, vocab.X1)),
		)),
		algebra.N(1),
	)
	q.VarphiModelRampFlatMu = algebra.Eq(vocab.VarphiR, algebra.MulOf(
		vocab.Varphi0,
		algebra.PowOf(brk, twoMu),
	))

	switch en.cfg.Flow {
	case FlowRamp:
		q.VarphiModel = q.VarphiModelRamp
	case FlowRampFlat:
		if en.cfg.Mu.Cmp(big.NewRat(1, 2)) == 0 {
			q.VarphiModel = q.VarphiModelRampFlat
		} else {
			q.VarphiModel = q.VarphiModelRampFlatMu
		}
	}

	xOfRx := algebra.SubE(vocab.X1, vocab.Rx)
	q.VarphiRx = algebra.Eq(
		vocab.VarphiR,
		q.VarphiModel.RHS.Sub("x", xOfRx).Simplify(),
	)
}
