// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// CircuitConfig contains all configuration for the circuit puzzle.
type CircuitConfig struct {
	Electrical CircuitElectrical `yaml:"electrical"`
	Input      CircuitInput      `yaml:"input"`
}

// CircuitElectrical defines the electrical model constants.
// Current through the closed loop is voltage / resistance.
type CircuitElectrical struct {
	Voltage    float64 `yaml:"voltage"`    // Battery voltage in volts
	Resistance float64 `yaml:"resistance"` // Bulb resistance in ohms
}

// CircuitInput defines click handling parameters.
type CircuitInput struct {
	// ClickThreshold is the maximum distance, in world units, between a
	// click and a wire segment for the click to toggle the wire.
	ClickThreshold float64 `yaml:"click_threshold"`
}

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Field      DodgeField       `yaml:"field"`
	Player     DodgePlayer      `yaml:"player"`
	Enemy      DodgeEnemy       `yaml:"enemy"`
	Stars      DodgeStars       `yaml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DodgeField defines the fixed world dimensions the game simulates in.
type DodgeField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgePlayer defines player parameters.
type DodgePlayer struct {
	Size         float64 `yaml:"size"`          // Square side length in world units
	Speed        float64 `yaml:"speed"`         // Horizontal units per tick
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between player and field bottom
}

// DodgeEnemy defines the falling block parameters.
type DodgeEnemy struct {
	Size      float64 `yaml:"size"`       // Square side length in world units
	BaseSpeed float64 `yaml:"base_speed"` // Fall speed at the start of an episode
}

// DodgeStars defines the decorative background star field.
type DodgeStars struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DifficultyConfig defines the speed ramp applied on each enemy respawn.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to enemy speed per respawn
	SpeedCap       float64 `yaml:"speed_cap"`       // Enemy speed never exceeds this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpeedIncrement = 0.1
		cfg.Difficulty.SpeedCap = 5.0
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpeedIncrement = 0.2
		cfg.Difficulty.SpeedCap = 6.0
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpeedIncrement = 0.3
		cfg.Difficulty.SpeedCap = 7.5
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
