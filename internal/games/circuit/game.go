// Package circuit implements a beginner electric-circuit toggle puzzle.
// The player clicks wires to energize them and clicks the switch to close
// the loop; when all three wires are on and the switch is closed, current
// flows and the bulb lights up.
package circuit

import (
	"github.com/akulagin/mini-arcade/internal/config"
	"github.com/akulagin/mini-arcade/internal/core"
	"github.com/akulagin/mini-arcade/internal/registry"
)

// World dimensions. The board is laid out in a fixed coordinate space and
// projected onto the terminal at render time.
const (
	WorldW = 900
	WorldH = 500
)

// Component panels in world coordinates.
var (
	batteryPanel = core.NewRectF(60, 180, 120, 140)
	bulbPanel    = core.NewRectF(300, 150, 120, 120)
	switchPanel  = core.NewRectF(540, 160, 140, 100)
	returnPanel  = core.NewRectF(760, 180, 100, 140)
)

// Visual characters for rendering.
const (
	WireOnChar   = '█'
	WireOffChar  = '·'
	NodeChar     = '●'
	BulbOffChar  = '○'
	BulbOnChar   = '◉'
	GroundChar   = '⏚'
	BatteryChar  = '▮'
	KnobChar     = '●'
)

// Wire is a togglable segment between two fixed connection points.
type Wire struct {
	Label     string
	A, B      core.Vec
	Energized bool
}

// Game implements the circuit puzzle logic.
type Game struct {
	wires    [3]Wire
	switchOn bool
	score    int
	hint     string
	cfg      config.CircuitConfig
	runtime  core.RuntimeConfig
	vp       core.Viewport
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new circuit puzzle instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "circuit"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Electric Circuit"
}

// Reset initializes or restarts the puzzle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.vp = core.NewViewport(WorldW, WorldH, runtime.ScreenW, runtime.ScreenH)

	cfg, err := config.LoadCircuit(configPath)
	if err != nil {
		cfg = config.DefaultCircuitConfig()
	}
	g.cfg = cfg

	// Wires attach to the edge midpoints of adjacent panels.
	g.wires = [3]Wire{
		{
			Label: "Battery → Bulb",
			A:     core.V(batteryPanel.X+batteryPanel.W, batteryPanel.Y+batteryPanel.H/2),
			B:     core.V(bulbPanel.X, bulbPanel.Y+bulbPanel.H/2),
		},
		{
			Label: "Bulb → Switch",
			A:     core.V(bulbPanel.X+bulbPanel.W, bulbPanel.Y+bulbPanel.H/2),
			B:     core.V(switchPanel.X, switchPanel.Y+switchPanel.H/2),
		},
		{
			Label: "Switch → Return",
			A:     core.V(switchPanel.X+switchPanel.W, switchPanel.Y+switchPanel.H/2),
			B:     core.V(returnPanel.X, returnPanel.Y+returnPanel.H/2),
		},
	}
	g.switchOn = false
	g.score = 0
	g.hint = "Click wires to toggle ON/OFF. Click the switch to toggle it."
}

// Closed returns true if the loop is complete: all wires energized and
// the switch closed.
func (g *Game) Closed() bool {
	return g.wires[0].Energized && g.wires[1].Energized && g.wires[2].Energized && g.switchOn
}

// Current computes the loop current using I = V / R when the circuit is
// closed, and zero otherwise.
func (g *Game) Current() float64 {
	if !g.Closed() {
		return 0
	}
	return g.cfg.Electrical.Voltage / g.cfg.Electrical.Resistance
}

// Step advances the puzzle by one tick, applying clicks and the reset key.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		g.resetBoard()
	}

	for _, c := range in.Clicks {
		g.handleClick(g.vp.ToWorld(c.X, c.Y))
	}

	return core.StepResult{State: g.State()}
}

// handleClick toggles the first target hit by the click: wires are tested
// in loop order, then the switch region. A single click never toggles two
// targets.
func (g *Game) handleClick(p core.Vec) {
	for i := range g.wires {
		w := &g.wires[i]
		if core.NearSegment(p, w.A, w.B, g.cfg.Input.ClickThreshold) {
			w.Energized = !w.Energized
			g.hint = "Toggled wire: " + w.Label
			return
		}
	}

	if switchPanel.ContainsVec(p) {
		g.switchOn = !g.switchOn
		// Score only when this switch toggle closes the loop. Completing
		// the loop by toggling a wire while the switch is already closed
		// does not score; the switch is the "test the circuit" action.
		if g.Closed() {
			g.score++
			g.hint = "Great! Circuit closed. Bulb is ON. (Press R to reset)"
		} else {
			g.hint = "Switch toggled. Complete all wires to light the bulb."
		}
	}
}

// resetBoard opens every wire and the switch. The session score is kept.
func (g *Game) resetBoard() {
	for i := range g.wires {
		g.wires[i].Energized = false
	}
	g.switchOn = false
	g.hint = "Reset done. Toggle wires and the switch to complete the loop."
}

// State returns the current game state. The puzzle has no fail state, so
// GameOver is always false and the session ends on quit.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.score,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("circuit", func() registry.Game {
		return New()
	})
}
