package gme

import (
	"math"

	"github.com/geomech/erode/internal/algebra"
)

// Closed-form solvers return several root candidates; which one is the
// physical branch depends on the parameter regime. A RootPolicy makes
// the selection explicit: candidates are evaluated at named numeric
// probes and the first admissible one wins. The chosen index and probe
// are recorded so a selection can be audited after the fact.

// Probe is a named numeric assignment for admissibility testing.
type Probe struct {
	Name string
	Env  map[string]float64
}

// RootPolicy selects one symbolic root from a candidate list.
type RootPolicy struct {
	Probes []Probe
	Accept func(v float64) bool
}

// RootChoice records which candidate was selected and at which probe.
type RootChoice struct {
	Root  algebra.Expr
	Index int
	Probe string
}

// SelectByRoot walks candidates in order and accepts the first one that
// is admissible at any probe. Used where the candidate order itself
// encodes the branch preference.
func (p RootPolicy) SelectByRoot(cands []algebra.Expr, base map[string]float64) (RootChoice, bool) {
	for i, cand := range cands {
		for _, probe := range p.Probes {
			if p.Accept(algebra.EvalF(cand, merged(base, probe.Env))) {
				return RootChoice{Root: cand, Index: i, Probe: probe.Name}, true
			}
		}
	}
	return RootChoice{}, false
}

// SelectByProbe walks probes in order and, at each, accepts the first
// admissible candidate. Used where a primary probe is preferred and a
// fallback probe only consulted when the primary rejects everything.
func (p RootPolicy) SelectByProbe(cands []algebra.Expr, base map[string]float64) (RootChoice, bool) {
	for _, probe := range p.Probes {
		for i, cand := range cands {
			if p.Accept(algebra.EvalF(cand, merged(base, probe.Env))) {
				return RootChoice{Root: cand, Index: i, Probe: probe.Name}, true
			}
		}
	}
	return RootChoice{}, false
}

func merged(base, probe map[string]float64) map[string]float64 {
	env := make(map[string]float64, len(base)+len(probe))
	for k, v := range base {
		env[k] = v
	}
	for k, v := range probe {
		env[k] = v
	}
	return env
}

func finiteReal(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegativeReal(v float64) bool { return finiteReal(v) && v >= 0 }

func positiveReal(v float64) bool { return finiteReal(v) && v > 0 }

// tanbetaAlphaPolicy probes the tan(beta)(tan(alpha)) inversion at small
// and order-one ray angles; a candidate admissible at any of them is the
// physical branch.
var tanbetaAlphaPolicy = RootPolicy{
	Probes: []Probe{
		{Name: "ta=0", Env: map[string]float64{"ta": 0}},
		{Name: "ta=0.01", Env: map[string]float64{"ta": 0.01}},
		{Name: "ta=1", Env: map[string]float64{"ta": 1}},
	},
	Accept: finiteReal,
}

// indicatrixPolicy selects the cos^2(beta) root that is real and
// non-negative, first near-vertical slowness, then a gentler fallback.
var indicatrixPolicy = RootPolicy{
	Probes: []Probe{
		{Name: "varphi=1 pz=-0.01", Env: map[string]float64{"varphi": 1, "pz": -0.01}},
		{Name: "varphi=10 pz=-0.5", Env: map[string]float64{"varphi": 10, "pz": -0.5}},
	},
	Accept: nonNegativeReal,
}

// geodesicTanbetaPolicy selects the tilt branch used to close the
// metric over the ray direction. Probes cover both ray-angle signs
// since the sign of tan(alpha) flips with eta across 1.
var geodesicTanbetaPolicy = RootPolicy{
	Probes: []Probe{
		{Name: "ta=0.2", Env: map[string]float64{"ta": 0.2}},
		{Name: "ta=-0.2", Env: map[string]float64{"ta": -0.2}},
	},
	Accept: positiveReal,
}

// extremumPolicy accepts the first real positive tilt extremum at the
// configured exponent.
var extremumPolicy = RootPolicy{
	Probes: []Probe{{Name: "eta", Env: nil}},
	Accept: positiveReal,
}
