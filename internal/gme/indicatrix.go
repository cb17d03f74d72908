package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveIndicatrix constructs the figuratrix (the unit level set of the
// slowness) and the indicatrix (the dual unit velocity set). Raising
// the pz(cos beta) relation to twice the denominator of eta gives a
// polynomial in cos^2(beta); its admissible root closes tan(beta), px
// and the indicatrix ray velocities over (pz, varphi).
//
// The polynomial degree exceeds the closed-form solvers for the tangent
// tilt with eta in {1/4, 3/2}; those combinations leave the stage
// unavailable with a diagnostic rather than guessing a root.
func (en *Engine) deriveIndicatrix() {
	q := &en.Eqns
	cosb := algebra.Cos(vocab.Beta)
	sinb := algebra.Sin(vocab.Beta)

	fail := func(reason string) {
		q.FgtxCossqrdbeta = noEqn(reason)
		q.FgtxTanbeta = noEqn(reason)
		q.FgtxPx = noEqn(reason)
		q.IdtxRdotx = noEqn(reason)
		q.IdtxRdotz = noEqn(reason)
		en.notice("indicatrix", reason)
	}

	// pz = -cos(beta)*p through the erosion model, erodibility as a
	// bare symbol, tilt reduced to cos(beta) alone.
	pz := algebra.Neg(algebra.MulOf(q.PVarphiBeta.RHS, cosb))
	pz = algebra.Replace(pz, vocab.VarphiR, vocab.Varphi)
	pz = en.etaSub(pz)
	pz = algebra.Replace(pz, algebra.Abs(algebra.Tan(vocab.Beta)),
		algebra.Div(algebra.Abs(sinb), algebra.Abs(cosb)))
	pz = algebra.Replace(pz, algebra.Abs(sinb), sinb)
	pz = algebra.Replace(pz, algebra.Abs(cosb), cosb)
	pz = algebra.Replace(pz, sinb,
		algebra.Sqrt(algebra.SubE(algebra.N(1), algebra.Square(cosb)))).Simplify()

	dd := algebra.N(q.EtaDbldenom)
	raised := algebra.Eq(algebra.PowOf(vocab.Pz, dd), algebra.PowOf(pz, dd))
	q.PzCosbetaVarphi = okEqn(raised)

	// Change of variables c = cos^2(beta), then solve.
	res := algebra.ReplaceEvenPow(raised.Residual(), cosb, vocab.CosBeta2)
	roots, err := algebra.SolveFor(res, "c")
	if err != nil {
		fail("no closed form for cos^2(beta): " + err.Error())
		return
	}
	choice, ok := indicatrixPolicy.SelectByProbe(roots, en.baseEnv())
	if !ok {
		fail("no real non-negative cos^2(beta) root at any probe")
		return
	}
	q.IndicatrixChoice = &choice
	q.FgtxCossqrdbeta = okEqn(algebra.Eq(vocab.CosBeta2, choice.Root))

	tb := algebra.Sqrt(algebra.SubE(
		algebra.PowOf(choice.Root, algebra.N(-1)), algebra.N(1))).Simplify()
	q.FgtxTanbeta = okEqn(algebra.Eq(algebra.Tan(vocab.Beta), tb))
	fgtxPx := algebra.Neg(algebra.MulOf(vocab.Pz, tb)).Simplify()
	q.FgtxPx = okEqn(algebra.Eq(vocab.Px, fgtxPx))

	// Indicatrix velocities by co-metric contraction, px closed over
	// the figuratrix root.
	gstar := q.Gstar.RHS
	bind := func(e algebra.Expr) algebra.Expr {
		e = algebra.Replace(e, vocab.VarphiR, vocab.Varphi)
		e = algebra.Replace(e, vocab.Px, fgtxPx)
		return e.Simplify()
	}
	q.IdtxRdotx = okEqn(algebra.Eq(vocab.Rdotx, bind(algebra.AddOf(
		algebra.MulOf(gstar.At(0, 0), vocab.Px),
		algebra.MulOf(gstar.At(0, 1), vocab.Pz),
	))))
	q.IdtxRdotz = okEqn(algebra.Eq(vocab.Rdotz, bind(algebra.AddOf(
		algebra.MulOf(gstar.At(1, 0), vocab.Px),
		algebra.MulOf(gstar.At(1, 1), vocab.Pz),
	))))
}
