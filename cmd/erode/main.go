package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/config"
	"github.com/geomech/erode/internal/gme"
	"github.com/geomech/erode/internal/tui"
)

var (
	configFile string
	preset     string
	tilt       string
	eta        string
	mu         string
	flow       string
	profile    string
	raw        bool
	indicatrix bool
	geodesics  bool
	latex      bool
	// Plot dimensions
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "erode",
		Short: "symbolic derivation of erosion ray equations",
		RunE:  runBrowse,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&tilt, "tilt", config.DefaultTilt, "tilt model (sin, tan)")
	rootCmd.PersistentFlags().StringVar(&eta, "eta", config.DefaultEta, "erosion exponent (rational)")
	rootCmd.PersistentFlags().StringVar(&mu, "mu", config.DefaultMu, "flow exponent (rational)")
	rootCmd.PersistentFlags().StringVar(&flow, "flow", config.DefaultFlow, "flow model (ramp, ramp-flat)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", config.DefaultProfile, "initial profile (planar, convex-up, concave-up)")
	rootCmd.PersistentFlags().BoolVar(&raw, "raw", false, "keep eta symbolic")
	rootCmd.PersistentFlags().BoolVar(&indicatrix, "indicatrix", false, "derive the indicatrix")
	rootCmd.PersistentFlags().BoolVar(&geodesics, "geodesics", false, "derive the geodesic equations")

	deriveCmd := &cobra.Command{
		Use:   "derive",
		Short: "run the derivation and print the equations",
		RunE:  runDerive,
	}
	deriveCmd.Flags().BoolVar(&latex, "latex", false, "include latex forms")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "browse derived equations interactively",
		RunE:  runBrowse,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [tilt]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the initial surface profile and flow component",
		RunE:  plotProfile,
	}
	profileCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")
	profileCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export derived equations as json",
		RunE:  exportJSON,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(deriveCmd, browseCmd, presetsCmd, profileCmd, exportCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration: preset first, then
// config file, with changed CLI flags overriding both.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(tilt, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(tilt))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("tilt") {
		cfg.Tilt = tilt
	}
	if flags.Changed("eta") {
		cfg.Eta = eta
	}
	if flags.Changed("mu") {
		cfg.Mu = mu
	}
	if flags.Changed("flow") {
		cfg.Flow = flow
	}
	if flags.Changed("profile") {
		cfg.Profile = profile
	}
	if flags.Changed("raw") {
		cfg.Raw = raw
	}
	if flags.Changed("indicatrix") {
		cfg.Indicatrix = indicatrix
	}
	if flags.Changed("geodesics") {
		cfg.Geodesics = geodesics
	}
	return cfg, nil
}

func buildEngine(cmd *cobra.Command) (*gme.Engine, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	ecfg, err := cfg.Engine()
	if err != nil {
		return nil, nil, err
	}
	en, err := gme.New(ecfg)
	if err != nil {
		return nil, nil, err
	}
	return en, cfg, nil
}

func runDerive(cmd *cobra.Command, args []string) error {
	en, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	return tui.Report{Latex: latex}.Write(os.Stdout, en)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	en, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	return tui.RunBrowser(en)
}

func listPresets(cmd *cobra.Command, args []string) error {
	tilts := []string{"sin", "tan"}
	if len(args) > 0 {
		tilts = args
	}
	for _, t := range tilts {
		names := config.ListPresets(t)
		if len(names) == 0 {
			fmt.Printf("no presets for tilt model: %s\n", t)
			continue
		}
		fmt.Printf("presets for %s:\n", t)
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	en, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	env := map[string]float64{
		"x_1":        cfg.Param("x_1", 1),
		"h_0":        cfg.Param("h_0", 0.5),
		"kappa_h":    cfg.Param("kappa_h", 1.5),
		"varphi_0":   cfg.Param("varphi_0", 1),
		"x_sigma":    cfg.Param("x_sigma", 0.05),
		"chi":        cfg.Param("chi", 1),
		"varepsilon": cfg.Param("varepsilon", 0.1),
	}
	x1 := env["x_1"]

	sample := func(e algebra.Expr, name string) []float64 {
		data := make([]float64, plotWidth)
		for i := range data {
			env[name] = x1 * float64(i+1) / float64(plotWidth)
			data[i] = algebra.EvalF(e, env)
		}
		delete(env, name)
		return data
	}

	fmt.Printf("initial profile h(x), %s, x in (0, %.2g]\n\n", cfg.Profile, x1)
	fmt.Println(asciigraph.Plot(sample(en.Eqns.HX.RHS, "x"),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("h(x)"),
	))
	fmt.Println()

	fmt.Println(asciigraph.Plot(sample(en.Eqns.VarphiRx.RHS, "rx"),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("varphi(x), flow model "+string(en.Config().Flow)),
	))
	return nil
}

// exportedEqn is the JSON shape for one derived equation.
type exportedEqn struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Latex string `json:"latex,omitempty"`
}

func exportJSON(cmd *cobra.Command, args []string) error {
	en, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	names := en.Names()
	eqns := make([]exportedEqn, 0, len(names))
	for _, name := range names {
		v, ok := en.ByName(name)
		if !ok {
			continue
		}
		e := exportedEqn{Name: name, Text: v.String()}
		if lx, ok := v.(interface{ LaTeX() string }); ok {
			e.Latex = lx.LaTeX()
		}
		eqns = append(eqns, e)
	}

	notices := en.Notices()
	sort.Slice(notices, func(i, j int) bool { return notices[i].Stage < notices[j].Stage })

	out := struct {
		Config    *config.Config `json:"config"`
		Equations []exportedEqn  `json:"equations"`
		Notices   []gme.Notice   `json:"notices,omitempty"`
	}{cfg, eqns, notices}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
