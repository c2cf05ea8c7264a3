package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedCircuitDefaultsMatch(t *testing.T) {
	var cfg CircuitConfig
	if err := yaml.Unmarshal(defaultCircuitYAML, &cfg); err != nil {
		t.Fatalf("embedded circuit.yaml failed to parse: %v", err)
	}

	if cfg != DefaultCircuitConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultCircuitConfig())
	}
}

func TestEmbeddedDodgeDefaultsMatch(t *testing.T) {
	var cfg DodgeConfig
	if err := yaml.Unmarshal(defaultDodgeYAML, &cfg); err != nil {
		t.Fatalf("embedded dodge.yaml failed to parse: %v", err)
	}

	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultDodgeConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// No custom path and no on-disk configs in the test environment: the
	// loader must end at the embedded defaults without error.
	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if cfg.Field.Width != 700 || cfg.Field.Height != 450 {
		t.Errorf("field = %vx%v, want 700x450", cfg.Field.Width, cfg.Field.Height)
	}
}

func TestLoadCustomPathMissingIsError(t *testing.T) {
	if _, err := LoadDodge("/nonexistent/dodge.yaml"); err == nil {
		t.Error("a custom path that cannot be read must be an error")
	}
}

func TestApplyDodgePreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantEnabled   bool
		wantIncrement float64
		wantCap       float64
	}{
		{DifficultyEasy, true, 0.1, 5.0},
		{DifficultyNormal, true, 0.2, 6.0},
		{DifficultyHard, true, 0.3, 7.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			ApplyDodgePreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.wantEnabled ||
				cfg.Difficulty.SpeedIncrement != tc.wantIncrement ||
				cfg.Difficulty.SpeedCap != tc.wantCap {
				t.Errorf("preset %s: %+v", tc.preset, cfg.Difficulty)
			}
		})
	}

	t.Run("fixed", func(t *testing.T) {
		cfg := DefaultDodgeConfig()
		ApplyDodgePreset(&cfg, DifficultyFixed)
		if cfg.Difficulty.Enabled {
			t.Error("fixed preset must disable the speed ramp")
		}
	})

	t.Run("unknown preset is a no-op", func(t *testing.T) {
		cfg := DefaultDodgeConfig()
		ApplyDodgePreset(&cfg, "ultra")
		if cfg != DefaultDodgeConfig() {
			t.Errorf("unknown preset changed config: %+v", cfg)
		}
	})
}
