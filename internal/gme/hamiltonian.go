package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveHamiltonian obtains the fundamental function F* from the Okubo
// relation p = |p|/F* and squares it into the Hamiltonian
// H = F*^2 / 2, then closes H over the flow model.
func (en *Engine) deriveHamiltonian() {
	q := &en.Eqns

	q.OkuboFstar = algebra.Eq(
		algebra.Div(q.PNormPxpz.RHS, vocab.Fstar).Simplify(),
		q.PVarphiPxpz.RHS,
	)
	q.Fstar = mustSolve(q.OkuboFstar, vocab.Fstar)

	q.H = algebra.Eq(vocab.Ham,
		algebra.Div(algebra.Square(q.Fstar.RHS), algebra.N(2)).Simplify())
	q.HVarphiRx = algebra.ApplyEq(q.H, q.VarphiRx)
}
