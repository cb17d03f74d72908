// Package gme derives the equations of the geometric mechanics of
// erosion: from slowness-covector kinematics through the Hamiltonian,
// ray equations, metric tensor, indicatrix and boundary conditions.
//
// A derivation is staged. Each stage consumes equations produced by
// earlier stages through explicit substitution, mirroring how the
// theory is developed on paper. Stages that have no closed form for the
// configured exponents record a Notice and leave their outputs tagged
// unavailable rather than failing the whole construction.
package gme

import (
	"sort"

	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// MatrixEquation pairs a left-hand name with a matrix right-hand side.
type MatrixEquation struct {
	LHS string
	RHS *algebra.Matrix
}

func (m MatrixEquation) String() string {
	if m.RHS == nil {
		return m.LHS + " = <unavailable>"
	}
	return m.LHS + " = " + m.RHS.String()
}

// EigenResult is the eigendecomposition of the co-metric, or the reason
// it is unavailable.
type EigenResult struct {
	Vals   [2]algebra.Expr
	Vecs   [2]*algebra.Matrix
	reason string
}

func (r EigenResult) Ok() bool       { return r.Vecs[0] != nil }
func (r EigenResult) Reason() string { return r.reason }

// EqnsResult is an ordered equation system or the reason it is
// unavailable.
type EqnsResult struct {
	Eqns   []*algebra.Equation
	reason string
}

func (r EqnsResult) Ok() bool       { return len(r.Eqns) > 0 }
func (r EqnsResult) Reason() string { return r.reason }

// Equations is the store of derived equations. Field order follows the
// derivation order; unavailable stages hold tagged zero results.
type Equations struct {
	// Slowness-covector kinematics.
	Pcovec      MatrixEquation
	PxPBeta     *algebra.Equation
	PzPBeta     *algebra.Equation
	PNormPxpz   *algebra.Equation
	TanbetaPxpz *algebra.Equation
	SinbetaPxpz *algebra.Equation
	CosbetaPxpz *algebra.Equation
	PzPxTanbeta *algebra.Equation
	PxPzTanbeta *algebra.Equation
	PPzCosbeta  *algebra.Equation
	RxRAlpha    *algebra.Equation
	RzRAlpha    *algebra.Equation

	// Erosion rates and their inversions.
	XiP   *algebra.Equation
	XivPz *algebra.Equation
	PXi   *algebra.Equation
	PzXiv *algebra.Equation

	// Erosion model.
	XiVarphiBeta  *algebra.Equation
	XivVarphiPxpz *algebra.Equation
	PxXivVarphi   *algebra.Equation
	EtaDbldenom   int64

	// Flow model. All model variants are derived; VarphiModel aliases
	// the configured one.
	VarphiModelRamp       *algebra.Equation
	VarphiModelRampFlat   *algebra.Equation
	VarphiModelRampFlatMu *algebra.Equation
	VarphiModel           *algebra.Equation
	VarphiRx              *algebra.Equation

	// Slowness closures.
	PVarphiBeta    *algebra.Equation
	PVarphiPxpz    *algebra.Equation
	PRxPxpz        *algebra.Equation
	PRxTanbeta     *algebra.Equation
	PxBeta         *algebra.Equation
	PzBeta         *algebra.Equation
	XivPxpz        *algebra.Equation
	PzVarphiBeta   *algebra.Equation
	PxVarphiBeta   *algebra.Equation
	PzVarphiRxBeta *algebra.Equation
	PxVarphiRxBeta *algebra.Equation

	// Fundamental function and Hamiltonian.
	OkuboFstar *algebra.Equation
	Fstar      *algebra.Equation
	H          *algebra.Equation
	HVarphiRx  *algebra.Equation

	// Ray velocities, momentum rates, Hamilton's equations.
	RdotxRdotAlpha      *algebra.Equation
	RdotzRdotAlpha      *algebra.Equation
	RdotxPxpz           *algebra.Equation
	RdotzPxpz           *algebra.Equation
	RdotzOnRdotx        *algebra.Equation
	RdotzOnRdotxTanbeta *algebra.Equation
	RdotVec             MatrixEquation
	RdotPUnity          *algebra.Equation
	PdotxPxpz           *algebra.Equation
	PdotzPxpz           *algebra.Equation
	PdotCovec           MatrixEquation
	Hamiltons           []*algebra.Equation

	// Ray angles.
	TanalphaRdot             *algebra.Equation
	TanalphaPxpz             *algebra.Equation
	TanalphaBeta             *algebra.Equation
	BetaAtAlphaExtremum      EqnResult
	BetaAtAlphaExtremumValue NumResult
	TanbetaAlpha             EqnResult
	TanbetaChoice            *RootChoice

	// Metric tensor.
	Gstar      MatrixEquation
	DetGstar   *algebra.Equation
	G          MatResult
	GstarEigen EigenResult

	// Figuratrix and indicatrix.
	PzCosbetaVarphi  EqnResult
	FgtxCossqrdbeta  EqnResult
	FgtxTanbeta      EqnResult
	FgtxPx           EqnResult
	IdtxRdotx        EqnResult
	IdtxRdotz        EqnResult
	IndicatrixChoice *RootChoice

	// Geodesics.
	TanbetaPoly    EqnResult
	TanbetaOfTa    EqnResult
	GstarIJTanbeta MatResult
	GIJTanbeta     MatResult
	GstarIJ        MatResult
	GIJ            MatResult
	GstarIJFn      MatFnResult
	GIJFn          MatFnResult
	Christoffel    ChristoffelResult
	GeodesicEqns   EqnsResult
	VdotxFn        RayFnResult
	VdotzFn        RayFnResult

	// Slowness polynomial.
	PolyPxXivVarphi *algebra.Equation
	PolyPxXiv0      *algebra.Equation

	// Initial and boundary conditions. HXProfiles holds h(x) for every
	// profile family; HX aliases the configured one.
	HXProfiles     map[Profile]*algebra.Equation
	HX             *algebra.Equation
	GradhX         *algebra.Equation
	RzInitial      *algebra.Equation
	TanbetaInitial *algebra.Equation
	PInitial       *algebra.Equation
	PxInitial      *algebra.Equation
	PzInitial      *algebra.Equation
	Pz0Xiv0        *algebra.Equation
	PzpxUnity      *algebra.Equation
}

// Engine owns a configuration and the equations derived from it.
type Engine struct {
	cfg     Config
	notices []Notice

	// eta as it appears in model equations: the configured rational, or
	// the bare symbol in raw mode.
	eta  algebra.Expr
	etaN *algebra.Num
	muN  *algebra.Num

	Eqns Equations
}

// New runs the derivation for cfg. Construction fails only on an
// invalid configuration; parameter combinations without closed forms
// leave the affected stages unavailable with a Notice.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, &StageError{Stage: "config", Wrapped: err}
	}
	en := &Engine{
		cfg:  cfg,
		etaN: algebra.NumOf(cfg.Eta),
		muN:  algebra.NumOf(cfg.Mu),
	}
	if cfg.Raw {
		en.eta = vocab.Eta
	} else {
		en.eta = en.etaN
	}
	if cfg.EmptyOnly {
		return en, nil
	}
	en.deriveKinematics()
	en.deriveErosionRates()
	en.deriveErosionModel()
	en.deriveFlowModel()
	en.deriveSlowness()
	en.deriveHamiltonian()
	en.deriveRays()
	en.deriveAngles()
	en.deriveMetric()
	if cfg.DeriveIndicatrix {
		en.deriveIndicatrix()
	}
	en.deriveGeodesics()
	en.derivePxPoly()
	en.deriveBoundary()
	return en, nil
}

// Config returns the configuration the derivation ran with.
func (en *Engine) Config() Config { return en.cfg }

// Notices reports the stages that were skipped or degraded.
func (en *Engine) Notices() []Notice {
	return append([]Notice(nil), en.notices...)
}

func (en *Engine) notice(stage, reason string) {
	en.notices = append(en.notices, Notice{Stage: stage, Reason: reason})
}

// baseEnv is the numeric environment shared by all root probes.
func (en *Engine) baseEnv() map[string]float64 {
	return map[string]float64{
		"eta": en.cfg.etaFloat(),
		"mu":  en.cfg.muFloat(),
	}
}

// etaSub substitutes the configured eta value, needed even in raw mode
// by stages without a symbolic closed form.
func (en *Engine) etaSub(e algebra.Expr) algebra.Expr {
	return e.Sub("eta", en.etaN).Simplify()
}

// ByName resolves a derived result by its derivation name. Unavailable
// results resolve to false.
func (en *Engine) ByName(name string) (interface{ String() string }, bool) {
	v, ok := en.index()[name]
	return v, ok
}

// Names lists the available derivation names in sorted order.
func (en *Engine) Names() []string {
	idx := en.index()
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (en *Engine) index() map[string]interface{ String() string } {
	q := &en.Eqns
	idx := map[string]interface{ String() string }{}
	put := func(name string, eq *algebra.Equation) {
		if eq != nil {
			idx[name] = eq
		}
	}
	putR := func(name string, r EqnResult) {
		if r.Ok() {
			idx[name] = r.Eqn
		}
	}
	putM := func(name string, m MatrixEquation) {
		if m.RHS != nil {
			idx[name] = m
		}
	}
	put("px_p_beta", q.PxPBeta)
	put("pz_p_beta", q.PzPBeta)
	put("p_norm_pxpz", q.PNormPxpz)
	put("tanbeta_pxpz", q.TanbetaPxpz)
	put("sinbeta_pxpz", q.SinbetaPxpz)
	put("cosbeta_pxpz", q.CosbetaPxpz)
	put("pz_px_tanbeta", q.PzPxTanbeta)
	put("px_pz_tanbeta", q.PxPzTanbeta)
	put("p_pz_cosbeta", q.PPzCosbeta)
	put("rx_r_alpha", q.RxRAlpha)
	put("rz_r_alpha", q.RzRAlpha)
	put("xi_p", q.XiP)
	put("xiv_pz", q.XivPz)
	put("p_xi", q.PXi)
	put("pz_xiv", q.PzXiv)
	put("xi_varphi_beta", q.XiVarphiBeta)
	put("xiv_varphi_pxpz", q.XivVarphiPxpz)
	put("px_xiv_varphi", q.PxXivVarphi)
	put("varphi_model_ramp", q.VarphiModelRamp)
	put("varphi_model_rampflat", q.VarphiModelRampFlat)
	put("varphi_model_rampflatmu", q.VarphiModelRampFlatMu)
	put("varphi_model", q.VarphiModel)
	put("varphi_rx", q.VarphiRx)
	put("p_varphi_beta", q.PVarphiBeta)
	put("p_varphi_pxpz", q.PVarphiPxpz)
	put("p_rx_pxpz", q.PRxPxpz)
	put("p_rx_tanbeta", q.PRxTanbeta)
	put("px_beta", q.PxBeta)
	put("pz_beta", q.PzBeta)
	put("xiv_pxpz", q.XivPxpz)
	put("pz_varphi_beta", q.PzVarphiBeta)
	put("px_varphi_beta", q.PxVarphiBeta)
	put("pz_varphi_rx_beta", q.PzVarphiRxBeta)
	put("px_varphi_rx_beta", q.PxVarphiRxBeta)
	put("okubo_fstar", q.OkuboFstar)
	put("fstar", q.Fstar)
	put("hamiltonian", q.H)
	put("hamiltonian_varphi_rx", q.HVarphiRx)
	put("rdotx_rdot_alpha", q.RdotxRdotAlpha)
	put("rdotz_rdot_alpha", q.RdotzRdotAlpha)
	put("rdotx_pxpz", q.RdotxPxpz)
	put("rdotz_pxpz", q.RdotzPxpz)
	put("rdotz_on_rdotx", q.RdotzOnRdotx)
	put("rdotz_on_rdotx_tanbeta", q.RdotzOnRdotxTanbeta)
	put("rdot_p_unity", q.RdotPUnity)
	put("pdotx_pxpz", q.PdotxPxpz)
	put("pdotz_pxpz", q.PdotzPxpz)
	put("tanalpha_rdot", q.TanalphaRdot)
	put("tanalpha_pxpz", q.TanalphaPxpz)
	put("tanalpha_beta", q.TanalphaBeta)
	putR("beta_at_alpha_extremum", q.BetaAtAlphaExtremum)
	putR("tanbeta_alpha", q.TanbetaAlpha)
	put("det_gstar", q.DetGstar)
	if q.GstarEigen.Ok() {
		for i, val := range q.GstarEigen.Vals {
			idx["gstar_eigenvalues["+itoa(i)+"]"] = algebra.Eq(vocab.Lambda, val)
		}
	}
	putR("pz_cosbeta_varphi", q.PzCosbetaVarphi)
	putR("fgtx_cossqrdbeta", q.FgtxCossqrdbeta)
	putR("fgtx_tanbeta", q.FgtxTanbeta)
	putR("fgtx_px", q.FgtxPx)
	putR("idtx_rdotx", q.IdtxRdotx)
	putR("idtx_rdotz", q.IdtxRdotz)
	putR("tanbeta_poly", q.TanbetaPoly)
	putR("tanbeta_of_tanalpha", q.TanbetaOfTa)
	put("poly_px_xiv_varphi", q.PolyPxXivVarphi)
	put("poly_px_xiv0", q.PolyPxXiv0)
	put("h_x", q.HX)
	for profile, eq := range q.HXProfiles {
		put("h_x_"+string(profile), eq)
	}
	put("gradh_x", q.GradhX)
	put("rz_initial", q.RzInitial)
	put("tanbeta_initial", q.TanbetaInitial)
	put("p_initial", q.PInitial)
	put("px_initial", q.PxInitial)
	put("pz_initial", q.PzInitial)
	put("pz0_xiv0", q.Pz0Xiv0)
	put("pzpx_unity", q.PzpxUnity)
	putM("pcovec", q.Pcovec)
	putM("rdot_vec", q.RdotVec)
	putM("pdot_covec", q.PdotCovec)
	putM("gstar", q.Gstar)
	if q.G.Ok() {
		idx["g"] = MatrixEquation{LHS: "g", RHS: q.G.Mat}
	}
	if q.GstarIJTanbeta.Ok() {
		idx["gstar_ij_tanbeta"] = MatrixEquation{LHS: "gstar_ij_tanbeta", RHS: q.GstarIJTanbeta.Mat}
	}
	if q.GIJTanbeta.Ok() {
		idx["g_ij_tanbeta"] = MatrixEquation{LHS: "g_ij_tanbeta", RHS: q.GIJTanbeta.Mat}
	}
	for i, eq := range q.Hamiltons {
		idx["hamiltons_eqns["+itoa(i)+"]"] = eq
	}
	for i, eq := range q.GeodesicEqns.Eqns {
		idx["geodesic_eqns["+itoa(i)+"]"] = eq
	}
	return idx
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [8]byte
	n := len(buf)
	for i > 0 {
		n--
		buf[n] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[n:])
}
