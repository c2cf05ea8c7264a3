package config

import (
	_ "embed"
)

//go:embed defaults/circuit.yaml
var defaultCircuitYAML []byte

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultCircuitConfig returns the default circuit puzzle configuration:
// a 9 V battery through a 10 Ω bulb, so a closed loop carries 0.9 A.
func DefaultCircuitConfig() CircuitConfig {
	return CircuitConfig{
		Electrical: CircuitElectrical{
			Voltage:    9,
			Resistance: 10,
		},
		Input: CircuitInput{
			ClickThreshold: 8,
		},
	}
}

// DefaultDodgeConfig returns the default dodge game configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: DodgeField{
			Width:  700,
			Height: 450,
		},
		Player: DodgePlayer{
			Size:         40,
			Speed:        5,
			BottomMargin: 10,
		},
		Enemy: DodgeEnemy{
			Size:      40,
			BaseSpeed: 2.0,
		},
		Stars: DodgeStars{
			Count:    28,
			MinSpeed: 0.5,
			MaxSpeed: 2.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			SpeedIncrement: 0.2,
			SpeedCap:       6.0,
		},
	}
}
