package gme

import (
	"testing"

	"github.com/geomech/erode/internal/algebra"
)

func TestSelectByRootPrefersCandidateOrder(t *testing.T) {
	policy := RootPolicy{
		Probes: []Probe{
			{Name: "a", Env: map[string]float64{"q": -1}},
			{Name: "b", Env: map[string]float64{"q": 2}},
		},
		Accept: positiveReal,
	}

	// The first candidate is admissible only at the second probe, but
	// candidate order outranks probe order.
	cands := []algebra.Expr{algebra.S("q"), algebra.N(5)}
	choice, ok := policy.SelectByRoot(cands, nil)
	if !ok {
		t.Fatal("expected a selection")
	}
	if choice.Index != 0 || choice.Probe != "b" {
		t.Errorf("expected candidate 0 at probe b, got %d at %q", choice.Index, choice.Probe)
	}
}

func TestSelectByProbePrefersProbeOrder(t *testing.T) {
	policy := RootPolicy{
		Probes: []Probe{
			{Name: "a", Env: map[string]float64{"q": -1}},
			{Name: "b", Env: map[string]float64{"q": 2}},
		},
		Accept: positiveReal,
	}

	cands := []algebra.Expr{algebra.S("q"), algebra.N(5)}
	choice, ok := policy.SelectByProbe(cands, nil)
	if !ok {
		t.Fatal("expected a selection")
	}
	if choice.Index != 1 || choice.Probe != "a" {
		t.Errorf("expected candidate 1 at probe a, got %d at %q", choice.Index, choice.Probe)
	}
}

func TestSelectRejectsAll(t *testing.T) {
	policy := RootPolicy{
		Probes: []Probe{{Name: "a", Env: nil}},
		Accept: positiveReal,
	}
	if _, ok := policy.SelectByRoot([]algebra.Expr{algebra.N(-3), algebra.S("unbound")}, nil); ok {
		t.Error("no candidate should be admissible")
	}
}

func TestProbeEnvOverridesBase(t *testing.T) {
	env := merged(map[string]float64{"q": 1, "w": 2}, map[string]float64{"q": 7})
	if env["q"] != 7 || env["w"] != 2 {
		t.Errorf("unexpected merge result: %v", env)
	}
}
