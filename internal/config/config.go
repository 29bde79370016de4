package config

import (
	"fmt"
	"os"

	"github.com/san-kum/blastsim/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultChamber  = ".....B....."
	DefaultForce    = 1
	DefaultFPS      = 4
	DefaultTheme    = "cyberpunk"
	DefaultFormat   = "text"
	DefaultLogLevel = "info"
	DefaultWorkers  = 4
)

type Config struct {
	Chamber  string `yaml:"chamber"`
	Force    int    `yaml:"force"`
	FPS      int    `yaml:"fps"`
	Theme    string `yaml:"theme"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Chamber:  DefaultChamber,
		Force:    DefaultForce,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
		Workers:  DefaultWorkers,
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in a YAML file onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the simulation inputs and the playback settings.
func (c *Config) Validate() error {
	if err := sim.Validate(c.Chamber, c.Force); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{Chamber: c.Chamber, Force: c.Force}
}
