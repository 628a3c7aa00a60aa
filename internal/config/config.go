package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInput         = "simulation_run.txt"
	DefaultHeaderLines   = 8
	DefaultBodies        = "all"
	DefaultAxes          = "xy"
	DefaultScale         = 1.496e11 // metres per astronomical unit
	DefaultUnit          = "AU"
	DefaultLimit         = 2.0
	DefaultTrailFraction = 0.01
	DefaultFPS           = 60
	DefaultStride        = 1
	DefaultOutput        = "trajectories.gif"
	DefaultPlotOutput    = "trajectories.png"
	DefaultSizeInches    = 10.0
	DefaultFrameSize     = 480
)

type Config struct {
	Input       string     `yaml:"input"`
	HeaderLines int        `yaml:"header_lines"`
	Bodies      string     `yaml:"bodies"`
	Axes        string     `yaml:"axes"`
	Scale       float64    `yaml:"scale"`
	Unit        string     `yaml:"unit"`
	Limit       float64    `yaml:"limit"`
	Animation   AnimConfig `yaml:"animation"`
	Plot        PlotConfig `yaml:"plot"`
}

type AnimConfig struct {
	TrailFraction float64 `yaml:"trail_fraction"`
	FPS           int     `yaml:"fps"`
	Stride        int     `yaml:"stride"`
	Output        string  `yaml:"output"`
	FrameSize     int     `yaml:"frame_size"`
}

type PlotConfig struct {
	Output string  `yaml:"output"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:       DefaultInput,
		HeaderLines: DefaultHeaderLines,
		Bodies:      DefaultBodies,
		Axes:        DefaultAxes,
		Scale:       DefaultScale,
		Unit:        DefaultUnit,
		Limit:       DefaultLimit,
		Animation: AnimConfig{
			TrailFraction: DefaultTrailFraction,
			FPS:           DefaultFPS,
			Stride:        DefaultStride,
			Output:        DefaultOutput,
			FrameSize:     DefaultFrameSize,
		},
		Plot: PlotConfig{
			Output: DefaultPlotOutput,
			Width:  DefaultSizeInches,
			Height: DefaultSizeInches,
		},
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

// Apply copies the non-zero fields of a preset over c.
func (c *Config) Apply(p *Config) {
	if p.Bodies != "" {
		c.Bodies = p.Bodies
	}
	if p.Axes != "" {
		c.Axes = p.Axes
	}
	if p.Scale != 0 {
		c.Scale = p.Scale
	}
	if p.Unit != "" {
		c.Unit = p.Unit
	}
	if p.Limit != 0 {
		c.Limit = p.Limit
	}
	if p.Animation.TrailFraction != 0 {
		c.Animation.TrailFraction = p.Animation.TrailFraction
	}
	if p.Animation.FPS != 0 {
		c.Animation.FPS = p.Animation.FPS
	}
	if p.Animation.Stride != 0 {
		c.Animation.Stride = p.Animation.Stride
	}
}
