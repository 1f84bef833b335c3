// Package config loads and saves run configuration as YAML and carries
// the built-in presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.025
	DefaultDuration = 10.0
)

// Config describes one run: which simulation, which solver, the step
// size and duration, plus optional overrides for physics parameters and
// the initial state variables.
type Config struct {
	Sim      string  `yaml:"sim"`
	Solver   string  `yaml:"solver"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`

	// Params overrides physics parameters by name (gravity, mass, ...).
	Params map[string]float64 `yaml:"params,omitempty"`

	// InitState overrides initial variable values keyed by variable name
	// (e.g. ANGLE, VELOCITY). Unknown names are rejected at apply time.
	InitState map[string]float64 `yaml:"init_state,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Sim:      "pendulum",
		Solver:   "rk4",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("sim is required")
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Duration)
	}
	return nil
}
