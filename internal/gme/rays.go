package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveRays forms Hamilton's equations: ray velocities as momentum
// gradients of H, momentum rates as negative position gradients, and
// the assembled four-row system in unscaled time.
func (en *Engine) deriveRays() {
	q := &en.Eqns

	q.RdotxRdotAlpha = algebra.Eq(vocab.Rdotx, algebra.MulOf(vocab.Rdot, algebra.Cos(vocab.Alpha)))
	q.RdotzRdotAlpha = algebra.Eq(vocab.Rdotz, algebra.MulOf(vocab.Rdot, algebra.Sin(vocab.Alpha)))

	q.RdotxPxpz = algebra.Eq(vocab.Rdotx, factorCollect(q.H.RHS.Diff("px")))
	q.RdotzPxpz = algebra.Eq(vocab.Rdotz, factorCollect(q.H.RHS.Diff("pz")))

	// The velocity ratio collapses to a rational function of the
	// components alone.
	ratio := algebra.Div(vocab.Rdotz, vocab.Rdotx)
	q.RdotzOnRdotx = algebra.Eq(ratio,
		ratioSimp(algebra.Div(q.RdotzPxpz.RHS, q.RdotxPxpz.RHS)))
	q.RdotzOnRdotxTanbeta = algebra.Eq(ratio,
		ratioSimp(algebra.Apply(q.RdotzOnRdotx.RHS, q.PxPzTanbeta)))

	q.RdotVec = MatrixEquation{
		LHS: "rdot_vec",
		RHS: algebra.ColVec(q.RdotxPxpz.RHS, q.RdotzPxpz.RHS),
	}
	q.RdotPUnity = algebra.Eq(
		algebra.AddOf(
			algebra.MulOf(vocab.Rdotx, vocab.Px),
			algebra.MulOf(vocab.Rdotz, vocab.Pz),
		),
		algebra.N(1),
	)

	// Momentum rates: px responds to the flow gradient, pz is conserved
	// because the flow has no vertical dependence.
	q.PdotxPxpz = algebra.Eq(vocab.Pdotx,
		factorCollect(orient(algebra.Neg(q.HVarphiRx.RHS.Diff("rx")))))
	q.PdotzPxpz = algebra.Eq(vocab.Pdotz, algebra.N(0))
	q.PdotCovec = MatrixEquation{
		LHS: "pdot_covec",
		RHS: algebra.MatrixOf([]algebra.Expr{q.PdotxPxpz.RHS, q.PdotzPxpz.RHS}),
	}

	q.Hamiltons = []*algebra.Equation{
		algebra.Eq(vocab.RdotxT, algebra.Apply(q.RdotxPxpz.RHS, q.VarphiRx)),
		algebra.Eq(vocab.RdotzT, algebra.Apply(q.RdotzPxpz.RHS, q.VarphiRx)),
		algebra.Eq(vocab.Pdotx, q.PdotxPxpz.RHS),
		algebra.Eq(vocab.Pdotz, q.PdotzPxpz.RHS),
	}
}
