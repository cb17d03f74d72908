package gme

import (
	"math"
	"testing"

	"github.com/geomech/erode/internal/algebra"
)

var boundaryEnv = map[string]float64{
	"x": 0.3, "x_1": 1, "h_0": 0.5, "kappa_h": 1.5,
	"varphi_0": 1, "varepsilon": 0.1, "mu": 0.75,
}

func TestPlanarProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profile = ProfilePlanar
	en, err := New(cfg)
	if err != nil {
		t.Fatalf("derivation failed: %v", err)
	}
	q := &en.Eqns

	// Constant gradient h_0/x_1, elevation linear in position.
	env := map[string]float64{"x": 2, "x_1": 4, "h_0": 2, "rx": 2}
	if g := algebra.EvalF(q.GradhX.RHS, env); math.Abs(g-0.5) > 1e-12 {
		t.Errorf("expected gradient 0.5, got %f", g)
	}
	env["x"] = 3.1
	if g := algebra.EvalF(q.GradhX.RHS, env); math.Abs(g-0.5) > 1e-12 {
		t.Errorf("gradient should not vary with x, got %f", g)
	}
	if z := algebra.EvalF(q.RzInitial.RHS, env); math.Abs(z-1) > 1e-12 {
		t.Errorf("expected rz = 1 at rx = 2, got %f", z)
	}
}

func TestConvexProfileElevation(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	h := algebra.EvalF(q.HX.RHS, boundaryEnv)
	want := 0.5 * math.Tanh(1.5*0.3) / math.Tanh(1.5)
	if math.Abs(h-want) > 1e-12 {
		t.Errorf("expected h = %f, got %f", want, h)
	}
}

func TestGradientMatchesProfile(t *testing.T) {
	for _, profile := range []Profile{ProfilePlanar, ProfileConvexUp, ProfileConcaveUp} {
		cfg := DefaultConfig()
		cfg.Profile = profile
		en, err := New(cfg)
		if err != nil {
			t.Fatalf("derivation failed for %s: %v", profile, err)
		}
		q := &en.Eqns

		const h = 1e-6
		up := map[string]float64{}
		dn := map[string]float64{}
		for k, v := range boundaryEnv {
			up[k], dn[k] = v, v
		}
		up["x"] += h
		dn["x"] -= h
		fd := (algebra.EvalF(q.HX.RHS, up) - algebra.EvalF(q.HX.RHS, dn)) / (2 * h)
		grad := algebra.EvalF(q.GradhX.RHS, boundaryEnv)
		if math.Abs(grad-fd) > 1e-6 {
			t.Errorf("%s: gradh = %f but finite difference gives %f", profile, grad, fd)
		}
	}
}

func TestInitialSlownessComponents(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	// Rebuild px, pz independently: the boundary tilt comes from the
	// profile gradient, the magnitude from the slowness closure with
	// the flow model evaluated at the same position.
	tb := algebra.EvalF(q.GradhX.RHS, boundaryEnv)
	sb := tb / math.Sqrt(1+tb*tb)
	cb := 1 / math.Sqrt(1+tb*tb)
	varphi := 1 * (math.Pow(1-0.3, 1.5) + 0.1)
	p := 1 / (varphi * math.Pow(sb, 1.5))

	px := algebra.EvalF(q.PxInitial.RHS, boundaryEnv)
	pz := algebra.EvalF(q.PzInitial.RHS, boundaryEnv)
	if math.Abs(px-p*sb) > 1e-9 {
		t.Errorf("expected px = %f, got %f", p*sb, px)
	}
	if math.Abs(pz+p*cb) > 1e-9 {
		t.Errorf("expected pz = %f, got %f", -p*cb, pz)
	}
	if pz >= 0 {
		t.Errorf("pz must be negative on the initial surface, got %f", pz)
	}
}

func TestBoundarySlownessNormalization(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	// On the unit level set the unity relation holds exactly.
	px, pz := 0.6, -0.8
	varphi := math.Pow(px, -1.5)
	v := algebra.EvalF(q.PzpxUnity.LHS, map[string]float64{
		"varphi": varphi, "px": px, "pz": pz,
	})
	if math.Abs(v-1) > 1e-9 {
		t.Errorf("expected unity, got %f", v)
	}
}

func TestSlownessPolynomialResidual(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	// Points generated from the erosion model satisfy the polynomial.
	beta, varphi := 0.7, 1.2
	xi := varphi * math.Pow(math.Sin(beta), 1.5)
	p := 1 / xi
	px := p * math.Sin(beta)
	pz := -p * math.Cos(beta)
	xiv := -1 / pz

	v := algebra.EvalF(q.PolyPxXivVarphi.LHS, map[string]float64{
		"px": px, "xiv": xiv, "varphi_r": varphi,
	})
	if math.Abs(v) > 1e-9 {
		t.Errorf("expected zero residual, got %g", v)
	}
}

func TestBoundaryPolynomialUsesBoundaryRate(t *testing.T) {
	en := newDefault(t)
	q := &en.Eqns

	free := algebra.FreeSymbols(q.PolyPxXiv0.LHS)
	if _, ok := free["xiv_0"]; !ok {
		t.Error("boundary polynomial should be pinned to xiv_0")
	}
	if _, ok := free["xiv"]; ok {
		t.Error("boundary polynomial should not keep the free vertical rate")
	}
	if _, ok := free["rx"]; !ok {
		t.Error("boundary polynomial should close varphi over position")
	}
}
