package config

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geomech/erode/internal/gme"
)

const (
	DefaultEta     = "3/2"
	DefaultMu      = "3/4"
	DefaultTilt    = "sin"
	DefaultFlow    = "ramp"
	DefaultProfile = "convex-up"

	DefaultPlotWidth  = 72
	DefaultPlotHeight = 16
)

// Config is the on-disk derivation configuration. Exponents and
// parameter values are exact rationals written as "p/q" or decimal
// strings.
type Config struct {
	Eta     string `yaml:"eta"`
	Mu      string `yaml:"mu"`
	Tilt    string `yaml:"tilt"`
	Flow    string `yaml:"flow"`
	Profile string `yaml:"profile"`

	Raw        bool `yaml:"raw"`
	Indicatrix bool `yaml:"indicatrix"`
	Geodesics  bool `yaml:"geodesics"`

	// Params assigns numeric values to flow and profile parameters,
	// keyed by symbol name (varphi_0, x_1, x_sigma, x_h, chi, h_0,
	// kappa_h).
	Params map[string]string `yaml:"params"`

	Plot PlotConfig `yaml:"plot"`
}

// PlotConfig sizes the terminal profile plots.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Eta:     DefaultEta,
		Mu:      DefaultMu,
		Tilt:    DefaultTilt,
		Flow:    DefaultFlow,
		Profile: DefaultProfile,
		Params: map[string]string{
			"varphi_0": "1",
			"x_1":      "1",
			"h_0":      "1/2",
			"kappa_h":  "3/2",
		},
		Plot: PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseRat parses an exact rational from "p/q", integer or decimal
// notation.
func ParseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("config: invalid rational %q", s)
	}
	return r, nil
}

// Engine converts the on-disk form into a derivation configuration.
func (c *Config) Engine() (gme.Config, error) {
	eta, err := ParseRat(c.Eta)
	if err != nil {
		return gme.Config{}, err
	}
	mu, err := ParseRat(c.Mu)
	if err != nil {
		return gme.Config{}, err
	}
	out := gme.Config{
		Eta:              eta,
		Mu:               mu,
		Tilt:             gme.TiltModel(c.Tilt),
		Flow:             gme.FlowModel(c.Flow),
		Profile:          gme.Profile(c.Profile),
		Raw:              c.Raw,
		DeriveIndicatrix: c.Indicatrix,
		DeriveGeodesics:  c.Geodesics,
	}
	if c.Geodesics {
		out.GeodesicParams = map[string]*big.Rat{}
		for name, val := range c.Params {
			r, err := ParseRat(val)
			if err != nil {
				return gme.Config{}, err
			}
			out.GeodesicParams[name] = r
		}
	}
	return out, nil
}

// Param returns a named parameter as a float, or the fallback when the
// parameter is absent or malformed.
func (c *Config) Param(name string, fallback float64) float64 {
	s, ok := c.Params[name]
	if !ok {
		return fallback
	}
	r, err := ParseRat(s)
	if err != nil {
		return fallback
	}
	f, _ := r.Float64()
	return f
}
