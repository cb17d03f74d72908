package gme

import (
	"math"
	"math/big"
	"testing"

	"github.com/geomech/erode/internal/algebra"
)

func newDefault(t *testing.T) *Engine {
	t.Helper()
	en, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("derivation failed: %v", err)
	}
	return en
}

func TestDefaultDerivationCompletes(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	for name, eq := range map[string]*algebra.Equation{
		"xi_varphi_beta": q.XiVarphiBeta,
		"varphi_rx":      q.VarphiRx,
		"p_varphi_beta":  q.PVarphiBeta,
		"hamiltonian":    q.H,
		"rdotx_pxpz":     q.RdotxPxpz,
		"pdotx_pxpz":     q.PdotxPxpz,
		"tanalpha_beta":  q.TanalphaBeta,
		"poly_px_xiv":    q.PolyPxXivVarphi,
		"pz_initial":     q.PzInitial,
		"pzpx_unity":     q.PzpxUnity,
	} {
		if eq == nil {
			t.Errorf("missing equation %s", name)
		}
	}
	if len(q.Hamiltons) != 4 {
		t.Errorf("expected 4 Hamilton equations, got %d", len(q.Hamiltons))
	}
	if len(en.Notices()) != 0 {
		t.Errorf("default derivation should produce no notices, got %v", en.Notices())
	}
}

func TestErosionRateAtVerticalTilt(t *testing.T) {
	en := newDefault(t)

	// At beta = pi/2 the sine tilt factor is 1, so xi equals varphi.
	v := algebra.EvalF(en.Eqns.XiVarphiBeta.RHS, map[string]float64{
		"varphi_r": 2.5,
		"beta":     math.Pi / 2,
	})
	if math.Abs(v-2.5) > 1e-12 {
		t.Errorf("expected xi = 2.5 at vertical tilt, got %f", v)
	}
}

func TestRampFlowAtBoundary(t *testing.T) {
	en := newDefault(t)

	// At rx = x_1 the ramp bottoms out at varphi_0 * varepsilon.
	v := algebra.EvalF(en.Eqns.VarphiRx.RHS, map[string]float64{
		"rx": 1, "x_1": 1, "varphi_0": 3, "varepsilon": 0.01, "mu": 0.75,
	})
	if math.Abs(v-0.03) > 1e-12 {
		t.Errorf("expected varphi = 0.03 at the boundary, got %f", v)
	}
}

func TestHamiltonianValue(t *testing.T) {
	en := newDefault(t)

	// eta = 3/2: H = varphi^2 px^3 / (2 sqrt(px^2+pz^2)).
	v := algebra.EvalF(en.Eqns.H.RHS, map[string]float64{
		"varphi_r": 2, "px": 0.6, "pz": -0.8,
	})
	want := 4 * 0.6 * 0.6 * 0.6 / 2
	if math.Abs(v-want) > 1e-12 {
		t.Errorf("expected H = %f, got %f", want, v)
	}
}

func TestRayVelocityMatchesHamiltonianGradient(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns
	env := map[string]float64{"varphi_r": 1.3, "px": 0.6, "pz": -0.8}

	const h = 1e-5
	diff := func(name string) float64 {
		up := map[string]float64{}
		dn := map[string]float64{}
		for k, v := range env {
			up[k], dn[k] = v, v
		}
		up[name] += h
		dn[name] -= h
		return (algebra.EvalF(q.H.RHS, up) - algebra.EvalF(q.H.RHS, dn)) / (2 * h)
	}

	rdotx := algebra.EvalF(q.RdotxPxpz.RHS, env)
	rdotz := algebra.EvalF(q.RdotzPxpz.RHS, env)
	if math.Abs(rdotx-diff("px")) > 1e-6 {
		t.Errorf("rdotx = %f but dH/dpx = %f", rdotx, diff("px"))
	}
	if math.Abs(rdotz-diff("pz")) > 1e-6 {
		t.Errorf("rdotz = %f but dH/dpz = %f", rdotz, diff("pz"))
	}
}

func TestRayVelocityUnity(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	// On the front, px*rdotx + pz*rdotz = 1. Choose varphi to place
	// (px, pz) on the unit level set: varphi = px^-eta * S^((eta-1)/2).
	px, pz := 0.6, -0.8
	varphi := math.Pow(px, -1.5)
	env := map[string]float64{"varphi_r": varphi, "px": px, "pz": pz}

	v := px*algebra.EvalF(q.RdotxPxpz.RHS, env) + pz*algebra.EvalF(q.RdotzPxpz.RHS, env)
	if math.Abs(v-1) > 1e-9 {
		t.Errorf("expected px*rdotx + pz*rdotz = 1, got %f", v)
	}
}

func TestMomentumRateMatchesGradient(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns
	env := map[string]float64{
		"rx": 0.4, "x_1": 1, "varphi_0": 1, "varepsilon": 0.1, "mu": 0.75,
		"px": 0.6, "pz": -0.8,
	}

	const h = 1e-5
	up := map[string]float64{}
	dn := map[string]float64{}
	for k, v := range env {
		up[k], dn[k] = v, v
	}
	up["rx"] += h
	dn["rx"] -= h
	grad := (algebra.EvalF(q.HVarphiRx.RHS, up) - algebra.EvalF(q.HVarphiRx.RHS, dn)) / (2 * h)

	pdotx := algebra.EvalF(q.PdotxPxpz.RHS, env)
	if math.Abs(pdotx+grad) > 1e-6 {
		t.Errorf("pdotx = %f but -dH/drx = %f", pdotx, -grad)
	}
}

func TestVerticalMomentumConserved(t *testing.T) {
	en := newDefault(t)
	if got := en.Eqns.PdotzPxpz.RHS.String(); got != "0" {
		t.Errorf("expected pdotz = 0, got %s", got)
	}
}

func TestRayAngleExtremum(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	if !q.BetaAtAlphaExtremumValue.Ok() {
		t.Fatalf("extremum unavailable: %s", q.BetaAtAlphaExtremumValue.Reason())
	}
	want := math.Atan(math.Sqrt(1.5))
	if math.Abs(q.BetaAtAlphaExtremumValue.Val-want) > 1e-9 {
		t.Errorf("expected extremum at beta = %f, got %f", want, q.BetaAtAlphaExtremumValue.Val)
	}
}

func TestTanbetaAlphaRoundTrip(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	if !q.TanbetaAlpha.Ok() {
		t.Fatalf("inversion unavailable: %s", q.TanbetaAlpha.Reason())
	}

	// Below the extremal tilt the selected branch inverts exactly.
	beta := 0.7
	ta := algebra.EvalF(q.TanalphaBeta.RHS, map[string]float64{"beta": beta})
	tb := algebra.EvalF(q.TanbetaAlpha.Eqn.RHS, map[string]float64{"alpha": math.Atan(ta)})
	if math.Abs(tb-math.Tan(beta)) > 1e-9 {
		t.Errorf("round trip gave tan(beta) = %f, want %f", tb, math.Tan(beta))
	}
}

func TestDegenerateSineEtaOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Eta = big.NewRat(1, 1)
	en, err := New(cfg)
	if err != nil {
		t.Fatalf("derivation failed: %v", err)
	}
	q := &en.Eqns

	if q.TanbetaAlpha.Ok() {
		t.Error("tanbeta_alpha should be unavailable for eta = 1 with sine tilt")
	}
	if q.G.Ok() {
		t.Error("metric inverse should be unavailable for eta = 1 with sine tilt")
	}
	stages := map[string]bool{}
	for _, n := range en.Notices() {
		stages[n.Stage] = true
	}
	if !stages["tanbeta_alpha"] || !stages["metric"] {
		t.Errorf("expected notices for tanbeta_alpha and metric, got %v", en.Notices())
	}
}

func TestByNameIndex(t *testing.T) {
	en := newDefault(t)

	for _, name := range []string{"hamiltonian", "gstar", "hamiltons_eqns[3]", "pz_initial"} {
		if _, ok := en.ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := en.ByName("no_such_equation"); ok {
		t.Error("ByName should reject unknown names")
	}
	if len(en.Names()) == 0 {
		t.Error("Names should not be empty")
	}
}

func TestEmptyOnlySkipsDerivation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmptyOnly = true
	en, err := New(cfg)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if en.Eqns.H != nil {
		t.Error("EmptyOnly should not derive the Hamiltonian")
	}
	if len(en.Names()) != 0 {
		t.Errorf("EmptyOnly should index nothing, got %v", en.Names())
	}
}
