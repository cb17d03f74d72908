package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveSlowness closes the slowness covector over the erosion and flow
// models: p, px and pz as functions of tilt, erodibility and position.
func (en *Engine) deriveSlowness() {
	q := &en.Eqns

	// p = 1/xi through the erosion model.
	q.PVarphiBeta = algebra.ApplyEq(q.PXi, q.XiVarphiBeta)

	// Over (px, pz); the tilt functions become component ratios and the
	// magnitude becomes the Euclidean norm.
	tmp := algebra.ApplyEq(q.PVarphiBeta,
		q.TanbetaPxpz, q.SinbetaPxpz, q.CosbetaPxpz, q.PNormPxpz)
	q.PVarphiPxpz = algebra.Eq(orient(tmp.LHS), orient(tmp.RHS))

	// Position dependence through the flow model, then tilt again.
	q.PRxPxpz = algebra.ApplyEq(q.PVarphiPxpz, q.VarphiRx)
	rt := algebra.ApplyEq(q.PRxPxpz, q.PzPxTanbeta)
	q.PRxTanbeta = algebra.Eq(orient(rt.LHS), orient(rt.RHS))

	q.PxBeta = algebra.Eq(vocab.Px,
		algebra.MulOf(q.PRxTanbeta.RHS, algebra.Sin(vocab.Beta)).Simplify())
	q.PzBeta = algebra.Eq(vocab.Pz,
		algebra.Neg(algebra.MulOf(q.PRxTanbeta.RHS, algebra.Cos(vocab.Beta))).Simplify())

	// Vertical rate over the components: xiv = -cos(beta)/p collapses to
	// pz/(px^2+pz^2).
	xv := algebra.Neg(algebra.Div(algebra.Cos(vocab.Beta), vocab.P))
	xv = algebra.Replace(xv, algebra.Cos(vocab.Beta),
		algebra.PowOf(algebra.AddOf(algebra.N(1), algebra.Square(algebra.Tan(vocab.Beta))), algebra.Frac(-1, 2)))
	xv = algebra.Apply(xv, q.TanbetaPxpz, q.PNormPxpz)
	q.XivPxpz = algebra.Eq(vocab.Xiv, orient(ratioSimp(xv)))

	// Components from the erosion model alone, by inversion. Rewriting
	// the bare tangent via sine and cosine before solving lets the
	// cosine cancel without touching the |tilt|^eta factor.
	inv := algebra.ApplyEq(q.XiVarphiBeta, q.XiP, q.PPzCosbeta)
	q.PzVarphiBeta = mustSolve(inv, vocab.Pz)
	invx := algebra.ApplyEq(q.PzVarphiBeta, q.PzPxTanbeta)
	invx = algebra.Eq(algebra.Apply(invx.LHS, tanAsSinCos), invx.RHS)
	q.PxVarphiBeta = mustSolve(invx, vocab.Px)

	q.PzVarphiRxBeta = algebra.ApplyEq(q.PzVarphiBeta, q.VarphiRx)
	q.PxVarphiRxBeta = algebra.ApplyEq(q.PxVarphiBeta, q.VarphiRx)
}
