package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// derivePxPoly expands the implicit px(xiv, varphi) relation into a
// polynomial in px at the configured eta. For eta > 1 the relation is
// rational in px, so the polynomial is its numerator. The boundary
// variant closes varphi over position and pins xiv at its boundary
// value, which is the form the ray initializer solves numerically.
func (en *Engine) derivePxPoly() {
	q := &en.Eqns

	tmp := en.etaSub(q.PxXivVarphi.LHS)
	if geOne(en.cfg.Eta) && !isOne(en.cfg.Eta) {
		tmp, _ = algebra.NumerDenom(tmp)
	}
	poly := algebra.Expand(tmp)
	q.PolyPxXivVarphi = algebra.Eq(poly, algebra.N(0))

	bound := algebra.Apply(poly, q.VarphiRx).Sub("xiv", vocab.Xiv0).Simplify()
	q.PolyPxXiv0 = algebra.Eq(bound, algebra.N(0))
}
