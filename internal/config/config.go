package config

import (
	"os"

	"github.com/san-kum/shmsim/internal/oscillator"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSpring  = 1.0
	DefaultMass    = 1.0
	DefaultInitPos = 1.0
)

type Config struct {
	Spring    float64 `yaml:"spring"`
	Mass      float64 `yaml:"mass"`
	InitPos   float64 `yaml:"init_pos"`
	InitVel   float64 `yaml:"init_vel"`
	Steps     int     `yaml:"steps"`
	Duration  float64 `yaml:"duration"`
	Damping   float64 `yaml:"damping"`
	DriveAmp  float64 `yaml:"drive_amp"`
	DriveFreq float64 `yaml:"drive_freq"`
	Plot      string  `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		Spring:    DefaultSpring,
		Mass:      DefaultMass,
		InitPos:   DefaultInitPos,
		Steps:     oscillator.DefaultSteps,
		Duration:  oscillator.DefaultDuration,
		DriveFreq: oscillator.DefaultDriveFreq,
		Plot:      "x",
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

// Validate rejects parameter sets the oscillator would refuse, using the
// same error type SetParameter reports. Must pass before NewModel.
func (c *Config) Validate() error {
	checks := []struct {
		p oscillator.Param
		v float64
	}{
		{oscillator.ParamSpring, c.Spring},
		{oscillator.ParamMass, c.Mass},
		{oscillator.ParamSteps, float64(c.Steps)},
		{oscillator.ParamDuration, c.Duration},
	}
	for _, check := range checks {
		if check.v <= 0 {
			return oscillator.InvalidParameterError{
				Param:  check.p,
				Value:  check.v,
				Reason: "must be greater than zero",
			}
		}
	}
	return nil
}

// NewModel builds an oscillator from the configured parameter set.
func (c *Config) NewModel() *oscillator.Model {
	opt := oscillator.Options{
		InitVelocity: c.InitVel,
		Steps:        c.Steps,
		Duration:     c.Duration,
		Damping:      c.Damping,
		DriveAmp:     c.DriveAmp,
		DriveFreq:    c.DriveFreq,
	}
	return oscillator.NewWithOptions(c.Spring, c.Mass, c.InitPos, opt)
}
