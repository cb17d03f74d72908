package tui

import (
	"math/big"
	"strings"
	"testing"

	"github.com/geomech/erode/internal/gme"
)

func newEngine(t *testing.T) *gme.Engine {
	t.Helper()
	en, err := gme.New(gme.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return en
}

func TestReportSections(t *testing.T) {
	en := newEngine(t)

	var b strings.Builder
	if err := (Report{}).Write(&b, en); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"kinematics", "erosion rates", "hamiltonian",
		"ray equations", "metric tensor", "boundary conditions",
		"eta=3/2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "geodesic equations") {
		t.Error("geodesic section present without DeriveGeodesics")
	}
}

func TestReportLatex(t *testing.T) {
	en := newEngine(t)

	var b strings.Builder
	if err := (Report{Latex: true}).Write(&b, en); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(b.String(), "$") {
		t.Error("latex report has no math delimiters")
	}
}

func TestReportNotices(t *testing.T) {
	cfg := gme.DefaultConfig()
	cfg.Tilt = gme.TiltSine
	cfg.Eta = big.NewRat(1, 1)

	en, err := gme.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var b strings.Builder
	if err := (Report{}).Write(&b, en); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(b.String(), "notices") {
		t.Error("notices section missing for degenerate configuration")
	}
}

func TestBrowserFilter(t *testing.T) {
	en := newEngine(t)
	m := newBrowser(en)

	m.filter = "hamilton"
	m.refilter()
	if len(m.filtered) == 0 {
		t.Fatal("filter matched nothing")
	}
	for _, name := range m.filtered {
		if !strings.Contains(name, "hamilton") {
			t.Errorf("filtered name %q does not match", name)
		}
	}

	m.filter = ""
	m.refilter()
	if len(m.filtered) != len(m.names) {
		t.Errorf("empty filter kept %d of %d names", len(m.filtered), len(m.names))
	}
}

func TestWrap(t *testing.T) {
	lines := wrap(strings.Repeat("a ", 60), 40)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(lines))
	}
	for _, line := range lines {
		if len(line) > 40 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}
