package config

import "sort"

// Presets are named view settings for common runs.
var Presets = map[string]*Config{
	"solar": {
		Bodies: "1:5", Axes: "xy", Scale: DefaultScale, Unit: "AU", Limit: 2,
	},
	"inner": {
		Bodies: "all", Axes: "xy", Scale: DefaultScale, Unit: "AU", Limit: 2,
	},
	"outer": {
		Bodies: "all", Axes: "xy", Scale: DefaultScale, Unit: "AU", Limit: 35,
		Animation: AnimConfig{TrailFraction: 0.05},
	},
	"earth_moon": {
		Bodies: "all", Axes: "xy", Scale: 1e3, Unit: "km", Limit: 500000,
		Animation: AnimConfig{TrailFraction: 0.1, FPS: 30},
	},
	"edge_on": {
		Bodies: "all", Axes: "xz", Scale: DefaultScale, Unit: "AU", Limit: 2,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
