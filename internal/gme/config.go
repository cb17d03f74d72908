package gme

import "math/big"

// TiltModel selects how erosion rate depends on surface tilt.
type TiltModel string

const (
	TiltSine    TiltModel = "sin"
	TiltTangent TiltModel = "tan"
)

// FlowModel selects the spatial form of the erodibility function.
type FlowModel string

const (
	FlowRamp     FlowModel = "ramp"
	FlowRampFlat FlowModel = "ramp-flat"
)

// Profile selects the initial surface shape for boundary conditions.
type Profile string

const (
	ProfilePlanar    Profile = "planar"
	ProfileConvexUp  Profile = "convex-up"
	ProfileConcaveUp Profile = "concave-up"
)

// Config parameterizes a derivation. Eta and Mu are exact rationals; the
// derivation substitutes them where a closed form depends on their value.
type Config struct {
	Eta *big.Rat
	Mu  *big.Rat

	Tilt    TiltModel
	Flow    FlowModel
	Profile Profile

	// Raw keeps eta symbolic in the erosion model and its direct
	// consequences. Stages that need a numeric exponent still substitute
	// the configured value.
	Raw bool

	// DeriveIndicatrix enables the figuratrix/indicatrix stage.
	DeriveIndicatrix bool

	// DeriveGeodesics enables the metric-tensor geodesic stage, which
	// additionally requires GeodesicParams.
	DeriveGeodesics bool

	// EmptyOnly constructs the engine without running any derivation.
	EmptyOnly bool

	// GeodesicParams assigns numeric values to the flow parameters
	// (varphi_0, x_1, x_sigma, x_h, chi) that the geodesic stage needs
	// before lambdifying. Nil leaves the geodesic stage unavailable.
	GeodesicParams map[string]*big.Rat
}

// DefaultConfig is the reference configuration: eta = 3/2, mu = 3/4,
// sine tilt, ramp flow, convex-up initial profile.
func DefaultConfig() Config {
	return Config{
		Eta:     big.NewRat(3, 2),
		Mu:      big.NewRat(3, 4),
		Tilt:    TiltSine,
		Flow:    FlowRamp,
		Profile: ProfileConvexUp,
	}
}

func (c Config) validate() error {
	if c.Eta == nil || c.Eta.Sign() <= 0 {
		return ErrBadExponent
	}
	if c.Mu == nil || c.Mu.Sign() <= 0 {
		return ErrBadExponent
	}
	switch c.Tilt {
	case TiltSine, TiltTangent:
	default:
		return ErrUnknownTiltModel
	}
	switch c.Flow {
	case FlowRamp, FlowRampFlat:
	default:
		return ErrUnknownFlowModel
	}
	switch c.Profile {
	case ProfilePlanar, ProfileConvexUp, ProfileConcaveUp:
	default:
		return ErrUnknownProfile
	}
	return nil
}

// etaFloat and muFloat are the probe values used when testing root
// admissibility numerically.
func (c Config) etaFloat() float64 { f, _ := c.Eta.Float64(); return f }
func (c Config) muFloat() float64  { f, _ := c.Mu.Float64(); return f }

func isOne(r *big.Rat) bool { return r.Cmp(big.NewRat(1, 1)) == 0 }

func geOne(r *big.Rat) bool { return r.Cmp(big.NewRat(1, 1)) >= 0 }
