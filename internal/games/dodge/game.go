// Package dodge implements an avoid-the-falling-block reflex game.
// The player slides along the bottom of the field while a block falls from
// the top; every block that reaches the bottom scores a point and falls
// faster the next time, up to a hard cap.
package dodge

import (
	"math/rand"

	"github.com/akulagin/mini-arcade/internal/config"
	"github.com/akulagin/mini-arcade/internal/core"
	"github.com/akulagin/mini-arcade/internal/registry"
)

// Visual characters for rendering.
const (
	PlayerChar = '█'
	EnemyChar  = '▓'
)

// Game implements the dodge game logic. Positions are in world units on a
// fixed-size field; rendering projects them onto the terminal.
type Game struct {
	playerX   float64 // Player left edge; y is fixed near the field bottom
	enemyX    float64
	enemyY    float64
	speed     float64 // Current fall speed, ramps up per respawn
	stars     []Star
	score     int
	highScore int
	gameOver  bool
	paused    bool
	rng       *rand.Rand
	cfg       config.DodgeConfig
	runtime   core.RuntimeConfig
	vp        core.Viewport
	tickCount int
}

// configPath and difficultyPreset store CLI overrides, set before creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge the Block"
}

// Reset initializes or restarts the game. The high score survives resets
// within a process; it only tracks episodes, not storage.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDodgePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.vp = core.NewViewport(cfg.Field.Width, cfg.Field.Height, runtime.ScreenW, runtime.ScreenH)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.startEpisode()
	g.initStars()
	g.tickCount = 0
}

// startEpisode places the player and enemy at their starting positions
// and clears per-episode state. Called from Reset and on restart.
func (g *Game) startEpisode() {
	g.playerX = (g.cfg.Field.Width - g.cfg.Player.Size) / 2
	g.enemyX = (g.cfg.Field.Width - g.cfg.Enemy.Size) / 2
	g.enemyY = -g.cfg.Enemy.Size
	g.speed = g.cfg.Enemy.BaseSpeed
	g.score = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	// The star field is decoration: it keeps drifting even on the game
	// over screen and never touches gameplay state.
	g.updateStars()

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.startEpisode()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.updatePlayer(in)
	g.updateEnemy()
	g.checkCollision()

	return core.StepResult{State: g.State()}
}

// updatePlayer applies held left/right movement with a boundary clamp.
// Both directions held cancel out before the clamp.
func (g *Game) updatePlayer(in core.InputFrame) {
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= g.cfg.Player.Speed
	}
	if in.Has(core.ActionRight) {
		dx += g.cfg.Player.Speed
	}
	g.playerX = core.ClampF(g.playerX+dx, 0, g.cfg.Field.Width-g.cfg.Player.Size)
}

// updateEnemy advances the fall and handles the bottom-edge respawn:
// new random x, y above the top, one point, and a speed bump up to the cap.
func (g *Game) updateEnemy() {
	g.enemyY += g.speed

	if g.enemyY > g.cfg.Field.Height {
		g.enemyX = g.rng.Float64() * (g.cfg.Field.Width - g.cfg.Enemy.Size)
		g.enemyY = -g.cfg.Enemy.Size
		g.score++
		if g.cfg.Difficulty.Enabled {
			g.speed = core.ClampF(g.speed+g.cfg.Difficulty.SpeedIncrement, 0, g.cfg.Difficulty.SpeedCap)
		}
	}
}

// checkCollision ends the episode on any nonzero player/enemy overlap.
func (g *Game) checkCollision() {
	if g.playerRect().Intersects(g.enemyRect()) {
		g.gameOver = true
		if g.score > g.highScore {
			g.highScore = g.score
		}
	}
}

// playerY returns the fixed vertical position of the player's top edge.
func (g *Game) playerY() float64 {
	return g.cfg.Field.Height - g.cfg.Player.Size - g.cfg.Player.BottomMargin
}

// playerRect returns the player's collision rectangle in world units.
func (g *Game) playerRect() core.RectF {
	return core.NewRectF(g.playerX, g.playerY(), g.cfg.Player.Size, g.cfg.Player.Size)
}

// enemyRect returns the enemy's collision rectangle in world units.
func (g *Game) enemyRect() core.RectF {
	return core.NewRectF(g.enemyX, g.enemyY, g.cfg.Enemy.Size, g.cfg.Enemy.Size)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}
