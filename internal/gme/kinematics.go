package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveKinematics relates the slowness covector (px, pz) to its
// magnitude p and the surface tilt beta, and the position vector to the
// ray angle alpha. Everything downstream substitutes through these
// identities.
func (en *Engine) deriveKinematics() {
	q := &en.Eqns
	pnorm := algebra.Sqrt(algebra.AddOf(algebra.Square(vocab.Px), algebra.Square(vocab.Pz)))

	q.Pcovec = MatrixEquation{
		LHS: "pcovec",
		RHS: algebra.MatrixOf([]algebra.Expr{vocab.Px, vocab.Pz}),
	}
	q.PxPBeta = algebra.Eq(vocab.Px, algebra.MulOf(vocab.P, algebra.Sin(vocab.Beta)))
	q.PzPBeta = algebra.Eq(vocab.Pz, algebra.Neg(algebra.MulOf(vocab.P, algebra.Cos(vocab.Beta))))
	q.PNormPxpz = algebra.Eq(vocab.P, pnorm)
	q.TanbetaPxpz = algebra.Eq(algebra.Tan(vocab.Beta), algebra.Neg(algebra.Div(vocab.Px, vocab.Pz)))
	q.SinbetaPxpz = algebra.Eq(algebra.Sin(vocab.Beta), algebra.Div(vocab.Px, pnorm))
	q.CosbetaPxpz = algebra.Eq(algebra.Cos(vocab.Beta), algebra.Neg(algebra.Div(vocab.Pz, pnorm)))

	// The inversions follow by solving, not by hand.
	q.PzPxTanbeta = mustSolve(q.TanbetaPxpz, vocab.Pz)
	q.PxPzTanbeta = mustSolve(q.TanbetaPxpz, vocab.Px)
	q.PPzCosbeta = mustSolve(q.PzPBeta, vocab.P)

	q.RxRAlpha = algebra.Eq(vocab.Rx, algebra.MulOf(vocab.R, algebra.Cos(vocab.Alpha)))
	q.RzRAlpha = algebra.Eq(vocab.Rz, algebra.MulOf(vocab.R, algebra.Sin(vocab.Alpha)))
}
