package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCircuit loads the circuit puzzle configuration.
// Search order: customPath -> ~/.arcade/configs/circuit.yaml ->
// ./configs/circuit.yaml -> embedded default.
func LoadCircuit(customPath string) (CircuitConfig, error) {
	var cfg CircuitConfig
	if err := load("circuit.yaml", customPath, defaultCircuitYAML, &cfg); err != nil {
		return DefaultCircuitConfig(), err
	}
	return cfg, nil
}

// LoadDodge loads the dodge game configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml ->
// ./configs/dodge.yaml -> embedded default.
func LoadDodge(customPath string) (DodgeConfig, error) {
	var cfg DodgeConfig
	if err := load("dodge.yaml", customPath, defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig(), err
	}
	return cfg, nil
}

// load resolves and parses a game config into out.
// A custom path that cannot be read or parsed is an error; the fallback
// locations are best-effort and end at the embedded default.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
