package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/blastsim/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chamber != DefaultChamber {
		t.Errorf("expected chamber %q, got %q", DefaultChamber, cfg.Chamber)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blast.yaml")
	if err := os.WriteFile(path, []byte("chamber: B...B\nforce: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Chamber != "B...B" || cfg.Force != 2 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.FPS != DefaultFPS || cfg.Theme != DefaultTheme {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blast.yaml")
	cfg := DefaultConfig()
	cfg.Chamber = "B..B."
	cfg.Theme = "ocean"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: %+v != %+v", got, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("force: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"bad chamber", func(c *Config) { c.Chamber = "" }, sim.ErrChamberSize},
		{"bad force", func(c *Config) { c.Force = 11 }, sim.ErrForceRange},
		{"bad symbol", func(c *Config) { c.Chamber = "B.#" }, sim.ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.FPS = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("pair")
	if !ok {
		t.Fatal("expected preset, got none")
	}
	if p.Chamber != "B...B" {
		t.Errorf("expected chamber B...B, got %s", p.Chamber)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset for nonexistent name")
	}
}

func TestPresetsAreValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		cfg := DefaultConfig()
		Presets[name].Apply(cfg)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
