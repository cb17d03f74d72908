package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// deriveGeodesics recasts ray tracing as geodesic flow of the erosion
// metric: the metric tensor is reduced to a function of the ray
// direction, differentiated into Christoffel symbols, and assembled
// into the second-order geodesic equations. The end products are
// numeric callables over (rx, rdotx, rdotz, varepsilon) suitable for an
// ODE integrator.
//
// The reduction uses that the Hessian of a Hamiltonian quadratic in the
// slowness has entries homogeneous of degree zero in (px, pz), so the
// representative covector (tan(beta), -1) evaluates the metric exactly
// on every ray.
//
// For eta >= 1 with the sine tilt the metric loses positivity and the
// geodesic picture does not apply.
func (en *Engine) deriveGeodesics() {
	q := &en.Eqns
	if !en.cfg.DeriveGeodesics {
		return
	}

	fail := func(reason string) {
		q.TanbetaPoly = noEqn(reason)
		q.TanbetaOfTa = noEqn(reason)
		q.GstarIJTanbeta = noMat(reason)
		q.GIJTanbeta = noMat(reason)
		q.GstarIJ = noMat(reason)
		q.GIJ = noMat(reason)
		q.GstarIJFn = MatFnResult{reason: reason}
		q.GIJFn = MatFnResult{reason: reason}
		q.Christoffel = ChristoffelResult{reason: reason}
		q.GeodesicEqns = EqnsResult{reason: reason}
		q.VdotxFn = RayFnResult{reason: reason}
		q.VdotzFn = RayFnResult{reason: reason}
		en.notice("geodesics", reason)
	}

	if en.cfg.Tilt == TiltSine && geOne(en.cfg.Eta) {
		fail("metric is not Riemannian for eta >= 1 with sine tilt")
		return
	}
	if len(en.cfg.GeodesicParams) == 0 {
		fail("no geodesic parameter values supplied")
		return
	}

	// Metric over the tilt: evaluate the degree-zero co-metric entries
	// on the representative covector (tan(beta), -1).
	tanbeta := algebra.Tan(vocab.Beta)
	rep := map[string]algebra.Expr{"px": tanbeta, "pz": algebra.N(-1)}
	gstarTB := q.Gstar.RHS.SubAll(rep).Map(ratioSimp)
	gTB, err := gstarTB.Inverse()
	if err != nil {
		fail(err.Error())
		return
	}
	gTB = gTB.Map(ratioSimp)
	q.GstarIJTanbeta = okMat(gstarTB)
	q.GIJTanbeta = okMat(gTB)

	// Tilt from the ray direction: clear tan(alpha)(tan(beta)) to a
	// polynomial and invert it.
	num, den := algebra.NumerDenom(algebra.Replace(en.etaSub(q.TanalphaBeta.RHS), tanbeta, vocab.Tb))
	poly := algebra.SubE(num, algebra.MulOf(vocab.Ta, den))
	q.TanbetaPoly = okEqn(algebra.Eq(poly, algebra.N(0)))
	roots, err := algebra.SolveFor(poly, "tb")
	if err != nil {
		fail(err.Error())
		return
	}
	choice, ok := geodesicTanbetaPolicy.SelectByRoot(roots, en.baseEnv())
	if !ok {
		fail("no real positive tilt branch at any ray-angle probe")
		return
	}
	tbRoot := choice.Root
	q.TanbetaOfTa = okEqn(algebra.Eq(tanbeta, tbRoot))

	// Close the metric over position and ray direction: tilt from the
	// direction, erodibility from the flow model, parameter values in.
	taVal := algebra.Div(vocab.Rdotz, vocab.Rdotx)
	bind := func(e algebra.Expr) algebra.Expr {
		e = algebra.Replace(e, tanbeta, tbRoot)
		e = algebra.Replace(e, vocab.Ta, taVal)
		e = algebra.Apply(e, q.VarphiRx)
		e = e.Sub("mu", en.muN)
		for name, val := range en.cfg.GeodesicParams {
			e = e.Sub(name, algebra.NumOf(val))
		}
		return e.Simplify()
	}
	gstarIJ := gstarTB.Map(bind)
	gIJ := gTB.Map(bind)
	q.GstarIJ = okMat(gstarIJ)
	q.GIJ = okMat(gIJ)
	q.GstarIJFn = MatFnResult{Fn: lambdifyMat(gstarIJ)}
	q.GIJFn = MatFnResult{Fn: lambdifyMat(gIJ)}

	// dg[k].At(i, j) = d g_ij / d r_k. The metric carries no rz
	// dependence, so the vertical derivative vanishes identically.
	diffBy := func(name string) func(algebra.Expr) algebra.Expr {
		return func(e algebra.Expr) algebra.Expr { return e.Diff(name).Simplify() }
	}
	dg := [2]*algebra.Matrix{
		gIJ.Map(diffBy("rx")),
		gIJ.Map(diffBy("rz")),
	}

	// Gamma^k_ij = (1/2) gstar^km (d_j g_mi + d_i g_mj - d_m g_ij).
	var gammas [2][2][2]algebra.Expr
	var fns [2][2][2]RayFn
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				var terms []algebra.Expr
				for m := 0; m < 2; m++ {
					sum := algebra.AddOf(
						dg[j].At(m, i),
						dg[i].At(m, j),
						algebra.Neg(dg[m].At(i, j)),
					)
					terms = append(terms, algebra.MulOf(gstarIJ.At(k, m), sum))
				}
				gamma := algebra.MulOf(algebra.Frac(1, 2), algebra.AddOf(terms...)).Simplify()
				gammas[i][j][k] = gamma
				fns[i][j][k] = lambdifyRay(gamma)
			}
		}
	}
	q.Christoffel = ChristoffelResult{fns: fns, ok: true}

	// vdot^k = -Gamma^k_ij rdot^i rdot^j, with the symmetric cross
	// term counted once.
	accel := func(k int) algebra.Expr {
		return algebra.Neg(algebra.AddOf(
			algebra.MulOf(gammas[0][0][k], algebra.Square(vocab.Rdotx)),
			algebra.MulOf(algebra.N(2), gammas[0][1][k], vocab.Rdotx, vocab.Rdotz),
			algebra.MulOf(gammas[1][1][k], algebra.Square(vocab.Rdotz)),
		)).Simplify()
	}
	eqns := []*algebra.Equation{
		algebra.Eq(vocab.RdotxT, vocab.Rdotx),
		algebra.Eq(vocab.RdotzT, vocab.Rdotz),
		algebra.Eq(vocab.Vdotx, accel(0)),
		algebra.Eq(vocab.Vdotz, accel(1)),
	}
	q.GeodesicEqns = EqnsResult{Eqns: eqns}
	q.VdotxFn = RayFnResult{Fn: lambdifyRay(eqns[2].RHS)}
	q.VdotzFn = RayFnResult{Fn: lambdifyRay(eqns[3].RHS)}
}
