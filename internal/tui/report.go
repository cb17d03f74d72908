package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/geomech/erode/internal/gme"
)

// A reportSection groups related equations under one heading. Names not
// present on the engine (gated or disabled stages) are skipped.
var reportSections = []struct {
	title string
	names []string
}{
	{"kinematics", []string{
		"px_p_beta", "pz_p_beta", "pcovec", "p_norm_pxpz",
		"tanbeta_pxpz", "sinbeta_pxpz", "cosbeta_pxpz",
		"pz_px_tanbeta", "px_pz_tanbeta", "p_pz_cosbeta",
		"rx_r_alpha", "rz_r_alpha",
	}},
	{"erosion rates", []string{
		"xi_p", "xiv_pz", "p_xi", "pz_xiv",
		"xi_varphi_beta", "xiv_varphi_pxpz", "px_xiv_varphi",
	}},
	{"flow model", []string{
		"varphi_model_ramp", "varphi_model_rampflat", "varphi_model_rampflatmu",
		"varphi_model", "varphi_rx",
	}},
	{"slowness closures", []string{
		"p_varphi_beta", "p_varphi_pxpz", "p_rx_pxpz", "p_rx_tanbeta",
		"px_beta", "pz_beta", "xiv_pxpz",
		"pz_varphi_beta", "px_varphi_beta",
		"pz_varphi_rx_beta", "px_varphi_rx_beta",
	}},
	{"fundamental function and hamiltonian", []string{
		"okubo_fstar", "fstar", "hamiltonian", "hamiltonian_varphi_rx",
	}},
	{"ray equations", []string{
		"rdotx_rdot_alpha", "rdotz_rdot_alpha",
		"rdotx_pxpz", "rdotz_pxpz", "rdot_vec",
		"rdotz_on_rdotx", "rdotz_on_rdotx_tanbeta", "rdot_p_unity",
		"pdotx_pxpz", "pdotz_pxpz", "pdot_covec",
		"hamiltons_eqns[0]", "hamiltons_eqns[1]",
		"hamiltons_eqns[2]", "hamiltons_eqns[3]",
	}},
	{"ray and surface angles", []string{
		"tanalpha_rdot", "tanalpha_pxpz", "tanalpha_beta",
		"beta_at_alpha_extremum", "tanbeta_alpha",
	}},
	{"metric tensor", []string{
		"gstar", "g", "det_gstar",
		"gstar_eigenvalues[0]", "gstar_eigenvalues[1]",
	}},
	{"indicatrix", []string{
		"pz_cosbeta_varphi", "fgtx_cossqrdbeta", "fgtx_tanbeta", "fgtx_px",
		"idtx_rdotx", "idtx_rdotz",
	}},
	{"geodesic equations", []string{
		"gstar_ij_tanbeta", "g_ij_tanbeta",
		"tanbeta_poly", "tanbeta_of_tanalpha",
		"geodesic_eqns[0]", "geodesic_eqns[1]",
		"geodesic_eqns[2]", "geodesic_eqns[3]",
	}},
	{"slowness polynomials", []string{"poly_px_xiv_varphi", "poly_px_xiv0"}},
	{"boundary conditions", []string{
		"h_x", "gradh_x", "rz_initial", "tanbeta_initial",
		"p_initial", "px_initial", "pz_initial", "pz0_xiv0", "pzpx_unity",
	}},
}

// Report writes the derived equations to w, grouped by stage, with any
// skip notices at the end. With latex set, each equation is followed by
// its LaTeX form.
type Report struct {
	Latex bool
	Width int
}

func (r Report) Write(w io.Writer, engine *gme.Engine) error {
	width := r.Width
	if width < 40 {
		width = 100
	}

	cfg := engine.Config()
	fmt.Fprintf(w, "derivation  eta=%s  mu=%s  tilt=%s  flow=%s  profile=%s\n",
		cfg.Eta.RatString(), cfg.Mu.RatString(), cfg.Tilt, cfg.Flow, cfg.Profile)

	for _, sec := range reportSections {
		var lines []string
		for _, name := range sec.names {
			v, ok := engine.ByName(name)
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %-18s %s", name, v.String()))
			if r.Latex {
				if lx, ok := v.(interface{ LaTeX() string }); ok {
					lines = append(lines, "  "+strings.Repeat(" ", 18)+" $"+lx.LaTeX()+"$")
				}
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n%s\n", sec.title, strings.Repeat("-", len(sec.title)))
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, clip(line, width)); err != nil {
				return err
			}
		}
	}

	if notices := engine.Notices(); len(notices) > 0 {
		fmt.Fprintf(w, "\nnotices\n-------\n")
		for _, n := range notices {
			fmt.Fprintf(w, "  %-14s %s\n", n.Stage, n.Reason)
		}
	}
	return nil
}

func clip(s string, w int) string {
	if len(s) <= w {
		return s
	}
	return s[:w-3] + "..."
}
