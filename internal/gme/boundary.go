package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveBoundary builds the initial surface profile h(x), its gradient,
// and the slowness components on that surface at t = 0. The profile
// fixes tan(beta) pointwise, and the slowness closure then gives p, px
// and pz as explicit functions of x. The final unity relation is the
// normalization a numeric initializer solves for px once pz is pinned
// by the boundary erosion rate.
func (en *Engine) deriveBoundary() {
	q := &en.Eqns

	ratio := algebra.Div(vocab.X, vocab.X1)
	rim := algebra.Div(algebra.SubE(vocab.X1, vocab.X), vocab.X1)
	q.HXProfiles = map[Profile]*algebra.Equation{
		ProfilePlanar: algebra.Eq(vocab.H, algebra.MulOf(vocab.H0, ratio)),
		ProfileConvexUp: algebra.Eq(vocab.H, algebra.Div(
			algebra.MulOf(vocab.H0, algebra.Tanh(algebra.MulOf(vocab.KappaH, ratio))),
			algebra.Tanh(algebra.Div(vocab.KappaH, vocab.X1)),
		)),
		ProfileConcaveUp: algebra.Eq(vocab.H, algebra.AddOf(
			vocab.H0,
			algebra.Div(
				algebra.MulOf(vocab.H0, algebra.Tanh(algebra.Neg(algebra.MulOf(vocab.KappaH, rim)))),
				algebra.Tanh(algebra.Div(vocab.KappaH, vocab.X1)),
			),
		)),
	}
	q.HX = q.HXProfiles[en.cfg.Profile]
	h := q.HX.RHS
	q.GradhX = algebra.Eq(vocab.GradH, h.Diff("x").Simplify())
	q.RzInitial = algebra.Eq(vocab.Rz, h.Sub("x", vocab.Rx).Simplify())
	q.TanbetaInitial = algebra.Eq(algebra.Tan(vocab.Beta), q.GradhX.RHS)

	// Slowness magnitude on the initial surface. For the sine tilt the
	// sin(beta) factor stays symbolic here; the component equations
	// below close it over tan(beta).
	p := algebra.Apply(q.PVarphiBeta.RHS, q.VarphiRx)
	p = algebra.Replace(p, algebra.Tan(vocab.Beta), q.TanbetaInitial.RHS)
	p = p.Sub("rx", vocab.X).Simplify()
	q.PInitial = algebra.Eq(vocab.P, p)

	onePlusTb2 := algebra.AddOf(algebra.N(1), algebra.Square(algebra.Tan(vocab.Beta)))
	sinSub := algebra.Sqrt(algebra.SubE(algebra.N(1), algebra.PowOf(onePlusTb2, algebra.N(-1))))
	cosSub := algebra.PowOf(onePlusTb2, algebra.Frac(-1, 2))
	closeTrig := func(e algebra.Expr) algebra.Expr {
		e = algebra.Replace(e, algebra.Sin(vocab.Beta), sinSub)
		e = algebra.Replace(e, algebra.Cos(vocab.Beta), cosSub)
		e = algebra.Replace(e, algebra.Tan(vocab.Beta), q.TanbetaInitial.RHS)
		return e.Sub("rx", vocab.X).Simplify()
	}
	q.PxInitial = algebra.Eq(vocab.Px, closeTrig(algebra.MulOf(p, algebra.Sin(vocab.Beta))))
	q.PzInitial = algebra.Eq(vocab.Pz, closeTrig(algebra.Neg(algebra.MulOf(p, algebra.Cos(vocab.Beta)))))

	q.Pz0Xiv0 = algebra.Eq(vocab.Pz0, algebra.Neg(algebra.PowOf(vocab.Xiv0, algebra.N(-1))))

	unity := algebra.Apply(q.RdotPUnity.LHS, q.RdotxPxpz, q.RdotzPxpz)
	unity = algebra.Replace(unity, vocab.VarphiR, vocab.Varphi)
	q.PzpxUnity = algebra.Eq(algebra.Expand(unity), algebra.N(1))
}
