package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveMetric builds the co-metric g* as the Hessian of the
// Hamiltonian in the slowness components, its determinant, the metric
// g as its inverse, and the eigendecomposition of g*.
//
// For eta = 1 with the sine tilt the co-metric is singular (the
// Hamiltonian degenerates to H = varphi^2/2), so the inverse and
// eigendecomposition are unavailable.
func (en *Engine) deriveMetric() {
	q := &en.Eqns

	h := en.etaSub(q.H.RHS)
	gstar := algebra.Hessian(h, []string{"px", "pz"}).Map(factorCollect)
	q.Gstar = MatrixEquation{LHS: "gstar", RHS: gstar}
	q.DetGstar = algebra.Eq(vocab.DetGstar, ratioSimp(gstar.Det()))

	if en.cfg.Tilt == TiltSine && isOne(en.cfg.Eta) {
		const reason = "co-metric is singular for eta = 1 with sine tilt"
		q.G = noMat(reason)
		q.GstarEigen = EigenResult{reason: reason}
		en.notice("metric", reason)
		return
	}

	g, err := gstar.Inverse()
	if err != nil {
		q.G = noMat(err.Error())
		q.GstarEigen = EigenResult{reason: err.Error()}
		en.notice("metric", err.Error())
		return
	}
	q.G = okMat(g.Map(ratioSimp))

	vals, vecs, err := gstar.Eigen2()
	if err != nil {
		q.GstarEigen = EigenResult{reason: err.Error()}
		en.notice("metric", err.Error())
		return
	}
	// Eigenstructure reported over position through the flow model.
	for i := range vals {
		vals[i] = algebra.Apply(vals[i], q.VarphiRx)
		vecs[i] = vecs[i].Map(func(e algebra.Expr) algebra.Expr {
			return algebra.Apply(e, q.VarphiRx)
		})
	}
	q.GstarEigen = EigenResult{Vals: vals, Vecs: vecs}
}
