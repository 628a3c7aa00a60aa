package orbit

import (
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

const (
	day  = 24 * 60 * 60
	year = 365 * day
)

type Preset struct {
	Name           string       `yaml:"name"`
	Integration    string       `yaml:"integration"`
	TimeSpan       float64      `yaml:"time_span"`
	TimeResolution float64      `yaml:"time_resolution"`
	Bodies         []BodyPreset `yaml:"bodies"`
}

type BodyPreset struct {
	Name     string     `yaml:"name"`
	Mass     float64    `yaml:"mass"`
	Massive  bool       `yaml:"massive"`
	Fixed    bool       `yaml:"fixed"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
}

func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &Preset{Integration: Leapfrog.String()}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return p, nil
}

func SavePreset(path string, p *Preset) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Engine builds a ready-to-run engine from the preset.
func (p *Preset) Engine() (*Engine, error) {
	integ, err := ParseIntegration(p.Integration)
	if err != nil {
		return nil, err
	}

	bodies := make([]Body, len(p.Bodies))
	for i, bp := range p.Bodies {
		bodies[i] = Body{
			Name:     bp.Name,
			Mass:     bp.Mass,
			Massive:  bp.Massive,
			Fixed:    bp.Fixed,
			Position: r3.Vec{X: bp.Position[0], Y: bp.Position[1], Z: bp.Position[2]},
			Velocity: r3.Vec{X: bp.Velocity[0], Y: bp.Velocity[1], Z: bp.Velocity[2]},
		}
	}
	return New(p.TimeSpan, p.TimeResolution, integ, bodies)
}

func planet(name string, mass, x, vy float64) BodyPreset {
	return BodyPreset{Name: name, Mass: mass, Massive: true, Position: [3]float64{x, 0, 0}, Velocity: [3]float64{0, vy, 0}}
}

var Presets = map[string]*Preset{
	"solar_system": {
		Name: "solar_system", Integration: "leapfrog", TimeSpan: year, TimeResolution: day,
		Bodies: []BodyPreset{
			{Name: "Sun", Mass: 1.989e30, Massive: true, Fixed: true},
			planet("Mercury", 3.285e23, 4.600e10, 58.98e3),
			planet("Venus", 4.867e24, 1.075e11, 35.26e3),
			planet("Earth", 5.972e24, 1.471e11, 30.29e3),
			planet("Mars", 6.39e23, 2.066e11, 26.50e3),
			planet("Jupiter", 1.898e27, 7.407e11, 13.72e3),
			planet("Saturn", 5.683e27, 1.349e12, 10.18e3),
			planet("Uranus", 8.681e25, 2.736e12, 7.11e3),
			planet("Neptune", 1.024e26, 4.459e12, 5.5e3),
		},
	},
	"earth_moon_iss": {
		Name: "earth_moon_iss", Integration: "leapfrog", TimeSpan: day, TimeResolution: 60,
		Bodies: []BodyPreset{
			{Name: "Earth", Mass: 5.972e24, Massive: true, Fixed: true},
			planet("Moon", 7.348e22, 385e6, 1.022e3),
			{Name: "ISS", Mass: 444.615e3, Position: [3]float64{6.3781e6 + 422e3, 0, 0}, Velocity: [3]float64{0, 7.6e3, 0}},
		},
	},
}

func GetPreset(name string) (*Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return p, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
