package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveErosionRates defines the erosion speed normal to the front,
// xi = 1/p, and the vertical erosion rate xiv = -1/pz, with their
// inversions.
func (en *Engine) deriveErosionRates() {
	q := &en.Eqns
	q.XiP = algebra.Eq(vocab.Xi, algebra.PowOf(vocab.P, algebra.N(-1)))
	q.XivPz = algebra.Eq(vocab.Xiv, algebra.Neg(algebra.PowOf(vocab.Pz, algebra.N(-1))))
	q.PXi = mustSolve(q.XiP, vocab.P)
	q.PzXiv = mustSolve(q.XivPz, vocab.Pz)
}

// deriveErosionModel builds the erosion model xi = varphi(r)*|tilt|^eta
// for the configured tilt measure, closes the vertical rate over the
// slowness components, and forms the implicit px(xiv, varphi) relation
// used later for polynomial extraction.
func (en *Engine) deriveErosionModel() {
	q := &en.Eqns

	var tilt algebra.Expr
	if en.cfg.Tilt == TiltSine {
		tilt = algebra.Sin(vocab.Beta)
	} else {
		tilt = algebra.Tan(vocab.Beta)
	}
	q.XiVarphiBeta = algebra.Eq(
		vocab.Xi,
		algebra.MulOf(vocab.VarphiR, algebra.PowOf(algebra.Abs(tilt), en.eta)),
	)

	// xiv = xi / cos(beta), then everything over (px, pz).
	e := algebra.Div(q.XiVarphiBeta.RHS, algebra.Cos(vocab.Beta))
	e = algebra.Apply(e, q.TanbetaPxpz, q.CosbetaPxpz, q.SinbetaPxpz)
	q.XivVarphiPxpz = algebra.Eq(vocab.Xiv, orient(e))

	// Raising both sides of xiv = f(px, pz) to twice the denominator of
	// eta clears the fractional exponents; substituting pz = -1/xiv then
	// yields an implicit relation between px, xiv and varphi alone.
	q.EtaDbldenom = 2 * en.cfg.Eta.Denom().Int64()
	dd := algebra.N(q.EtaDbldenom)
	rel := algebra.SubE(
		algebra.PowOf(q.XivVarphiPxpz.RHS, dd),
		algebra.PowOf(vocab.Xiv, dd),
	)
	rel = algebra.Apply(rel, q.PzXiv)
	rel = algebra.Div(rel, algebra.Square(vocab.Xiv))
	q.PxXivVarphi = algebra.Eq(algebra.Together(rel), algebra.N(0))
}
