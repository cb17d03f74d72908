// Package vocab fixes the symbol vocabulary shared by every derivation
// stage. Stages communicate through equations over these symbols, so the
// names here are the single source of truth; creating ad hoc symbols in a
// stage breaks cross-stage substitution.
package vocab

import "github.com/geomech/erode/internal/algebra"

// Position, slope and surface geometry.
var (
	Rx    = algebra.S("rx")    // horizontal position along the profile
	Rz    = algebra.S("rz")    // vertical position
	R     = algebra.S("r")     // generic position argument of varphi
	X     = algebra.S("x")     // distance upstream from the right boundary
	H     = algebra.S("h")     // surface elevation h(x)
	X1    = algebra.S("x_1")   // domain length
	Beta  = algebra.S("beta")  // surface tilt angle
	Alpha = algebra.S("alpha") // ray angle
)

// Momentum (erosion-front normal-slowness covector).
var (
	P  = algebra.S("p")  // covector magnitude
	Px = algebra.S("px") // horizontal component
	Pz = algebra.S("pz") // vertical component, non-positive
)

// Erosion rates.
var (
	Xi     = algebra.S("xi")     // erosion speed normal to the front
	Xiv    = algebra.S("xiv")    // vertical erosion rate
	Xiv0   = algebra.S("xiv_0")  // boundary value of xiv
	Pz0    = algebra.S("pz_0")   // boundary value of pz
	Rz0    = algebra.S("rz_0")   // initial elevation at the boundary
	Rdot   = algebra.S("rdot")       // ray speed magnitude
	Rdotx  = algebra.S("rdotx")      // horizontal ray velocity
	Rdotz  = algebra.S("rdotz")      // vertical ray velocity
	RdotxT = algebra.S("rdotx_true") // ray velocity in unscaled time
	RdotzT = algebra.S("rdotz_true")
	Pdotx  = algebra.S("pdotx")
	Pdotz  = algebra.S("pdotz")
	Vdotx  = algebra.S("vdotx") // ray acceleration components
	Vdotz  = algebra.S("vdotz")
)

// Flow and erodibility.
var (
	VarphiR  = algebra.S("varphi_r") // flow-dependent erodibility at position r
	Varphi   = algebra.S("varphi")   // erodibility as a bare symbol
	Varphi0  = algebra.S("varphi_0") // erodibility scale
	Eta      = algebra.S("eta")      // erosion-model exponent
	Mu       = algebra.S("mu")       // flow-model exponent
	Epsilon  = algebra.S("varepsilon") // flow offset at the divide
	Chi      = algebra.S("chi")      // distance factor chi = x_1 - rx
	XSigma   = algebra.S("x_sigma")  // ramp-flat transition width
	XH       = algebra.S("x_h")      // ramp-flat transition location
	H0       = algebra.S("h_0")      // initial-profile height scale
	KappaH   = algebra.S("kappa_h")  // initial-profile curvature scale
	GradH    = algebra.S("dh_dx")    // initial-profile gradient dh/dx
)

// Hamiltonian structure.
var (
	Fstar    = algebra.S("Fstar")  // fundamental function
	Ham      = algebra.S("H")      // Hamiltonian
	Ta       = algebra.S("ta")     // tan(alpha), the inversion variable
	Tb       = algebra.S("tb")     // tan(beta) as a polynomial variable
	BetaMax  = algebra.S("beta_at_alpha_extremum")
	DetGstar = algebra.S("det_gstar")
	Lambda   = algebra.S("lambda") // metric eigenvalue variable
	CosBeta2 = algebra.S("c")      // cos(beta)^2 in indicatrix polynomials
	T        = algebra.S("t")      // ray parameter (scaled time)
)

// Names lists every vocabulary symbol by name, for validation and TUI
// display.
func Names() []string {
	return []string{
		"rx", "rz", "r", "x", "h", "x_1", "beta", "alpha",
		"p", "px", "pz",
		"xi", "xiv", "xiv_0", "pz_0", "rz_0",
		"rdot", "rdotx", "rdotz", "rdotx_true", "rdotz_true",
		"pdotx", "pdotz", "vdotx", "vdotz",
		"varphi_r", "varphi", "varphi_0", "eta", "mu", "varepsilon",
		"chi", "x_sigma", "x_h", "h_0", "kappa_h", "dh_dx",
		"Fstar", "H", "ta", "tb", "beta_at_alpha_extremum", "det_gstar",
		"lambda", "c", "t",
	}
}
