package config

// Presets are derivation setups from the regimes studied in the
// erosion-mechanics literature, grouped by tilt model.
var Presets = map[string]map[string]*Config{
	"sin": {
		"reference": {
			Eta: "3/2", Mu: "3/4", Tilt: "sin", Flow: "ramp", Profile: "convex-up",
		},
		"shallow": {
			Eta: "1/2", Mu: "1/2", Tilt: "sin", Flow: "ramp", Profile: "planar",
		},
		"geodesic": {
			Eta: "1/2", Mu: "1/2", Tilt: "sin", Flow: "ramp", Profile: "planar",
			Geodesics: true,
			Params:    map[string]string{"varphi_0": "1", "x_1": "1"},
		},
		"indicatrix": {
			Eta: "3/2", Mu: "3/4", Tilt: "sin", Flow: "ramp", Profile: "convex-up",
			Indicatrix: true,
		},
	},
	"tan": {
		"reference": {
			Eta: "3/2", Mu: "3/4", Tilt: "tan", Flow: "ramp", Profile: "convex-up",
		},
		"ramp-flat": {
			Eta: "3/2", Mu: "1/2", Tilt: "tan", Flow: "ramp-flat", Profile: "concave-up",
			Params: map[string]string{"varphi_0": "1", "x_1": "1", "x_sigma": "1/20", "chi": "1"},
		},
		"geodesic": {
			Eta: "3/2", Mu: "3/4", Tilt: "tan", Flow: "ramp", Profile: "convex-up",
			Geodesics: true,
			Params:    map[string]string{"varphi_0": "1", "x_1": "1"},
		},
	},
}

// GetPreset resolves a preset by tilt model and name, filling the
// remaining fields with defaults. Unknown combinations return nil.
func GetPreset(tilt, name string) *Config {
	group, ok := Presets[tilt]
	if !ok {
		return nil
	}
	preset, ok := group[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Eta = preset.Eta
	cfg.Mu = preset.Mu
	cfg.Tilt = preset.Tilt
	cfg.Flow = preset.Flow
	cfg.Profile = preset.Profile
	cfg.Raw = preset.Raw
	cfg.Indicatrix = preset.Indicatrix
	cfg.Geodesics = preset.Geodesics
	for k, v := range preset.Params {
		cfg.Params[k] = v
	}
	return cfg
}

// ListPresets names the presets available for a tilt model.
func ListPresets(tilt string) []string {
	group, ok := Presets[tilt]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
