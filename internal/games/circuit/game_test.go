package circuit

import (
	"math"
	"testing"

	"github.com/akulagin/mini-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  90,
		ScreenH:  50,
		TickRate: 60,
		Seed:     1,
	}
}

// Clicks in world coordinates for each target.
var (
	clickWire1  = core.V(240, 230) // Midpoint of battery → bulb
	clickWire2  = core.V(480, 210) // Midpoint of bulb → switch
	clickWire3  = core.V(720, 230) // Midpoint of switch → return
	clickSwitch = core.V(610, 210) // Center of the switch panel
	clickEmpty  = core.V(450, 450) // Open space below the components
)

func TestClosedTruthTable(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// All 16 combinations of the three wire flags and the switch flag.
	for mask := 0; mask < 16; mask++ {
		g.wires[0].Energized = mask&1 != 0
		g.wires[1].Energized = mask&2 != 0
		g.wires[2].Energized = mask&4 != 0
		g.switchOn = mask&8 != 0

		want := mask == 15
		if got := g.Closed(); got != want {
			t.Errorf("mask %04b: Closed() = %v, want %v", mask, got, want)
		}

		wantCurrent := 0.0
		if want {
			wantCurrent = 0.9
		}
		if got := g.Current(); got != wantCurrent {
			t.Errorf("mask %04b: Current() = %v, want %v", mask, got, wantCurrent)
		}
	}
}

func TestCurrentExactValue(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := range g.wires {
		g.wires[i].Energized = true
	}
	g.switchOn = true

	// 9 V / 10 Ω must be exactly 0.9, not approximately.
	if got := g.Current(); got != 0.9 {
		t.Errorf("Current() = %v, want exactly 0.9", got)
	}
}

func TestClickTogglesWires(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	clicks := []core.Vec{clickWire1, clickWire2, clickWire3}
	for i, c := range clicks {
		g.handleClick(c)
		if !g.wires[i].Energized {
			t.Errorf("wire %d should be energized after click at %v", i, c)
		}
		g.handleClick(c)
		if g.wires[i].Energized {
			t.Errorf("wire %d should be off after second click", i)
		}
	}
}

func TestClickOutsideTargetsIsNoop(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	before := g.Snapshot()
	g.handleClick(clickEmpty)
	after := g.Snapshot()

	if before != after {
		t.Errorf("click in open space changed state: %+v -> %+v", before, after)
	}
}

func TestClickPriorityWireBeforeSwitch(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Just inside the switch panel but within the click threshold of the
	// bulb → switch wire endpoint. The wire wins; the switch must not flip.
	p := core.V(541, 210)
	g.handleClick(p)

	if !g.wires[1].Energized {
		t.Error("wire 2 should have been toggled")
	}
	if g.switchOn {
		t.Error("switch must not toggle on the same click that hit a wire")
	}
}

func TestScoreOnlyOnSwitchClosingLoop(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Energize all wires; no score yet.
	g.handleClick(clickWire1)
	g.handleClick(clickWire2)
	g.handleClick(clickWire3)
	if g.score != 0 {
		t.Fatalf("score = %d before switch toggle, want 0", g.score)
	}

	// Closing the switch completes the loop: exactly one point.
	g.handleClick(clickSwitch)
	if !g.Closed() {
		t.Fatal("circuit should be closed")
	}
	if g.score != 1 {
		t.Fatalf("score = %d after closing toggle, want 1", g.score)
	}

	// Opening the switch never scores.
	g.handleClick(clickSwitch)
	if g.Closed() {
		t.Fatal("circuit should be open")
	}
	if g.score != 1 {
		t.Fatalf("score = %d after opening toggle, want 1", g.score)
	}

	// Close it again: scores again (each open→closed transition counts).
	g.handleClick(clickSwitch)
	if g.score != 2 {
		t.Fatalf("score = %d after second closing toggle, want 2", g.score)
	}
}

func TestWireToggleNeverScores(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Switch closed first, then the last wire completes the loop.
	g.handleClick(clickSwitch)
	g.handleClick(clickWire1)
	g.handleClick(clickWire2)
	g.handleClick(clickWire3)

	if !g.Closed() {
		t.Fatal("circuit should be closed")
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0: only switch toggles score", g.score)
	}
}

func TestResetOpensEverythingKeepsScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.handleClick(clickWire1)
	g.handleClick(clickWire2)
	g.handleClick(clickWire3)
	g.handleClick(clickSwitch)
	if g.score != 1 {
		t.Fatalf("setup failed, score = %d", g.score)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionReset)
	g.Step(in)

	snap := g.Snapshot()
	if snap.Wires != [3]bool{false, false, false} || snap.SwitchOn {
		t.Errorf("reset should open all wires and the switch, got %+v", snap)
	}
	if snap.Score != 1 {
		t.Errorf("reset should keep the session score, got %d", snap.Score)
	}
}

func TestScenarioFullSession(t *testing.T) {
	// Start all-false, toggle all 3 wires, then the switch: closed, 0.9 A,
	// score 1. Toggle the switch again: open, 0 A, score unchanged.
	g := New()
	g.Reset(testConfig())

	for _, c := range []core.Vec{clickWire1, clickWire2, clickWire3, clickSwitch} {
		g.handleClick(c)
	}

	snap := g.Snapshot()
	if !snap.Closed || snap.Current != 0.9 || snap.Score != 1 {
		t.Fatalf("after closing: %+v, want closed, 0.9 A, score 1", snap)
	}

	g.handleClick(clickSwitch)
	snap = g.Snapshot()
	if snap.Closed || snap.Current != 0 || snap.Score != 1 {
		t.Fatalf("after reopening: %+v, want open, 0 A, score 1", snap)
	}
}

func TestStepDispatchesClicksThroughViewport(t *testing.T) {
	// With a screen matching the world size the projection is identity up
	// to cell centering, so screen clicks land on their world targets.
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: WorldW, ScreenH: WorldH, TickRate: 60, Seed: 1})

	in := core.NewInputFrame()
	in.AddClick(core.Click{X: int(clickWire1.X), Y: int(clickWire1.Y)})
	g.Step(in)

	if !g.wires[0].Energized {
		t.Error("click through Step should toggle wire 1")
	}
}

func TestGameStateNeverGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.AddClick(core.Click{X: 0, Y: 0})
	res := g.Step(in)

	if res.State.GameOver {
		t.Error("the puzzle has no fail state")
	}
}

func TestHitThresholdBoundary(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// clickWire2's segment is horizontal at y=210; threshold is 8.
	onEdge := core.V(480, 218)
	g.handleClick(onEdge)
	if !g.wires[1].Energized {
		t.Error("click exactly at threshold distance should hit")
	}

	g.Reset(testConfig())
	justPast := core.V(480, 210+8.001)
	g.handleClick(justPast)
	if g.wires[1].Energized {
		t.Error("click past threshold distance should miss")
	}

	if d := core.DistToSegment(onEdge, g.wires[1].A, g.wires[1].B); math.Abs(d-8) > 1e-9 {
		t.Errorf("distance = %v, want 8", d)
	}
}
