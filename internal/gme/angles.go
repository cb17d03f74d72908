package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveAngles relates the ray angle alpha to the surface tilt beta,
// locates the tilt at which alpha is extremal, and inverts
// tan(alpha) -> tan(beta) where a closed form exists.
//
// The inversion degenerates for eta = 1 with the sine tilt model, where
// alpha is independent of beta; that combination leaves tanbeta_alpha
// unavailable.
func (en *Engine) deriveAngles() {
	q := &en.Eqns
	tanalpha := algebra.Tan(vocab.Alpha)

	q.TanalphaRdot = algebra.Eq(tanalpha, algebra.Div(vocab.Rdotz, vocab.Rdotx))
	q.TanalphaPxpz = algebra.ApplyEq(q.TanalphaRdot, q.RdotzOnRdotx)
	q.TanalphaBeta = algebra.ApplyEq(q.TanalphaRdot, q.RdotzOnRdotxTanbeta)

	en.deriveTanbetaExtremum()
	en.deriveTanbetaAlpha()
}

// deriveTanbetaExtremum finds the tilt at which the ray angle is
// extremal: d tan(alpha)/d beta = 0. The derivative is polynomial in
// tan(beta), so the extremum follows from a change of variables and a
// closed-form solve.
func (en *Engine) deriveTanbetaExtremum() {
	q := &en.Eqns

	ddbeta := en.etaSub(q.TanalphaBeta.RHS).Diff("beta")
	residual := algebra.Replace(ddbeta, algebra.Tan(vocab.Beta), vocab.Tb)
	roots, err := algebra.SolveFor(residual, "tb")
	if err != nil {
		q.BetaAtAlphaExtremum = noEqn(err.Error())
		q.BetaAtAlphaExtremumValue = noNum(err.Error())
		en.notice("tanbeta_extremum", err.Error())
		return
	}
	choice, ok := extremumPolicy.SelectByRoot(roots, en.baseEnv())
	if !ok {
		const reason = "no real positive extremum at the configured eta"
		q.BetaAtAlphaExtremum = noEqn(reason)
		q.BetaAtAlphaExtremumValue = noNum(reason)
		en.notice("tanbeta_extremum", reason)
		return
	}
	beta := algebra.Atan(choice.Root)
	q.BetaAtAlphaExtremum = okEqn(algebra.Eq(vocab.BetaMax, beta))
	q.BetaAtAlphaExtremumValue = okNum(algebra.EvalF(beta, en.baseEnv()))
}

// deriveTanbetaAlpha inverts tan(alpha)(tan(beta)), selecting the
// physical branch of the quadratic by probing at small and order-one
// ray angles.
func (en *Engine) deriveTanbetaAlpha() {
	q := &en.Eqns

	if en.cfg.Tilt == TiltSine && isOne(en.cfg.Eta) {
		const reason = "ray angle is independent of tilt for eta = 1 with sine tilt"
		q.TanbetaAlpha = noEqn(reason)
		en.notice("tanbeta_alpha", reason)
		return
	}

	// ta*(eta + tb^2) - (eta - 1)*tb = 0, quadratic in tb.
	rhs := en.etaSub(q.TanalphaBeta.RHS)
	residual := algebra.SubE(vocab.Ta, algebra.Replace(rhs, algebra.Tan(vocab.Beta), vocab.Tb))
	roots, err := algebra.SolveFor(residual, "tb")
	if err != nil {
		q.TanbetaAlpha = noEqn(err.Error())
		en.notice("tanbeta_alpha", err.Error())
		return
	}
	choice, ok := tanbetaAlphaPolicy.SelectByRoot(roots, en.baseEnv())
	if !ok {
		const reason = "no real inversion branch at any probe"
		q.TanbetaAlpha = noEqn(reason)
		en.notice("tanbeta_alpha", reason)
		return
	}
	q.TanbetaChoice = &choice
	q.TanbetaAlpha = okEqn(algebra.Eq(
		algebra.Tan(vocab.Beta),
		algebra.Replace(choice.Root, vocab.Ta, algebra.Tan(vocab.Alpha)).Simplify(),
	))
}
