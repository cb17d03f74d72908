package config

import (
	"math/big"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Eta != "3/2" {
		t.Errorf("expected eta 3/2, got %s", cfg.Eta)
	}
	if cfg.Tilt != "sin" {
		t.Errorf("expected sin tilt, got %s", cfg.Tilt)
	}
	if cfg.Plot.Width <= 0 || cfg.Plot.Height <= 0 {
		t.Error("plot dimensions should be positive")
	}
}

func TestParseRat(t *testing.T) {
	tests := []struct {
		in   string
		want *big.Rat
	}{
		{"3/2", big.NewRat(3, 2)},
		{"2", big.NewRat(2, 1)},
		{"0.75", big.NewRat(3, 4)},
	}
	for _, tt := range tests {
		r, err := ParseRat(tt.in)
		if err != nil {
			t.Fatalf("ParseRat(%q): %v", tt.in, err)
		}
		if r.Cmp(tt.want) != 0 {
			t.Errorf("ParseRat(%q) = %v, want %v", tt.in, r, tt.want)
		}
	}
	if _, err := ParseRat("three halves"); err == nil {
		t.Error("expected error for malformed rational")
	}
}

func TestEngineConversion(t *testing.T) {
	cfg := GetPreset("tan", "geodesic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}

	ec, err := cfg.Engine()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if ec.Eta.Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf("expected eta 3/2, got %v", ec.Eta)
	}
	if !ec.DeriveGeodesics {
		t.Error("geodesic preset should enable the geodesic stage")
	}
	if ec.GeodesicParams["x_1"] == nil {
		t.Error("expected x_1 in geodesic parameters")
	}
}

func TestEngineConversion_BadRational(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Eta = "not-a-rational"
	if _, err := cfg.Engine(); err == nil {
		t.Error("expected error for malformed eta")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("sin", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "reference"); cfg != nil {
		t.Error("expected nil for nonexistent tilt model")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("sin"); len(presets) == 0 {
		t.Error("expected presets for the sine tilt")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent tilt model")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "derive.yaml")
	cfg := DefaultConfig()
	cfg.Eta = "1/4"
	cfg.Geodesics = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Eta != "1/4" || !got.Geodesics {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestParamFallback(t *testing.T) {
	cfg := DefaultConfig()
	if v := cfg.Param("x_1", 99); v != 1 {
		t.Errorf("expected configured x_1 = 1, got %f", v)
	}
	if v := cfg.Param("missing", 7.5); v != 7.5 {
		t.Errorf("expected fallback 7.5, got %f", v)
	}
}
