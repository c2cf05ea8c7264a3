package circuit

import (
	"fmt"

	"github.com/akulagin/mini-arcade/internal/core"
)

// Render draws the current board state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.vp.ScreenW = dst.Width()
	g.vp.ScreenH = dst.Height()

	g.drawPanel(dst, batteryPanel, "Battery (+)")
	g.drawPanel(dst, bulbPanel, "Bulb")
	g.drawPanel(dst, switchPanel, "Switch")
	g.drawPanel(dst, returnPanel, "Return (-)")

	g.drawBattery(dst)
	g.drawBulb(dst)
	g.drawSwitch(dst)
	g.drawReturn(dst)

	for i := range g.wires {
		g.drawWire(dst, g.wires[i])
	}

	g.drawHUD(dst)
}

// drawPanel draws a labeled component box.
func (g *Game) drawPanel(dst *core.Screen, panel core.RectF, title string) {
	r := g.vp.RectToScreen(panel)
	dst.DrawBox(r)
	dst.DrawTextColor(r.X+1, r.Y, title, core.ColorGray)
}

// drawWire draws one wire segment: bright and thick-looking when
// energized, dim when not, with connection nodes at both ends.
func (g *Game) drawWire(dst *core.Screen, w Wire) {
	ax, ay := g.vp.ToScreen(w.A)
	bx, by := g.vp.ToScreen(w.B)

	if w.Energized {
		dst.DrawLine(ax, ay, bx, by, WireOnChar, core.ColorBrightBlue)
	} else {
		dst.DrawLine(ax, ay, bx, by, WireOffChar, core.ColorDarkGray)
	}

	dst.SetCell(ax, ay, NodeChar, core.ColorWhite)
	dst.SetCell(bx, by, NodeChar, core.ColorWhite)
}

// drawBattery renders a simple battery body with polarity marks.
func (g *Game) drawBattery(dst *core.Screen) {
	r := g.vp.RectToScreen(batteryPanel)
	cx, cy := r.Center()
	dst.SetCell(cx-1, cy, BatteryChar, core.ColorWhite)
	dst.SetCell(cx, cy, BatteryChar, core.ColorWhite)
	dst.SetCell(cx+1, cy, '▯', core.ColorWhite)
	dst.DrawTextColor(cx+1, cy-1, "+", core.ColorBrightRed)
	dst.DrawTextColor(cx-2, cy+1, "-", core.ColorWhite)
}

// drawBulb renders the bulb, glowing when current flows.
func (g *Game) drawBulb(dst *core.Screen) {
	r := g.vp.RectToScreen(bulbPanel)
	cx, cy := r.Center()

	if g.Current() > 0 {
		dst.SetCell(cx, cy, BulbOnChar, core.ColorBrightYellow)
		// Glow halo around the lit bulb.
		dst.SetCell(cx-1, cy, '░', core.ColorYellow)
		dst.SetCell(cx+1, cy, '░', core.ColorYellow)
	} else {
		dst.SetCell(cx, cy, BulbOffChar, core.ColorGray)
	}
}

// drawSwitch renders the toggle track with the knob on the closed or open
// side.
func (g *Game) drawSwitch(dst *core.Screen) {
	r := g.vp.RectToScreen(switchPanel)
	cx, cy := r.Center()

	dst.DrawTextColor(cx-2, cy, "[   ]", core.ColorGray)
	if g.switchOn {
		dst.SetCell(cx+1, cy, KnobChar, core.ColorBrightGreen)
		dst.DrawTextColor(cx-1, cy+1, "ON", core.ColorBrightGreen)
	} else {
		dst.SetCell(cx-1, cy, KnobChar, core.ColorBrightRed)
		dst.DrawTextColor(cx-1, cy+1, "OFF", core.ColorBrightRed)
	}
}

// drawReturn renders the ground symbol for the return path.
func (g *Game) drawReturn(dst *core.Screen) {
	r := g.vp.RectToScreen(returnPanel)
	cx, cy := r.Center()
	dst.SetCell(cx, cy, GroundChar, core.ColorWhite)
}

// drawHUD draws the info lines across the top of the screen.
func (g *Game) drawHUD(dst *core.Screen) {
	title := " Electric Circuit (Beginner) "
	dst.DrawTextColor(2, 0, title, core.ColorBrightWhite)

	info := fmt.Sprintf(" Battery: %.0f V | Bulb: %.0f Ω | I = V / R = %.2f A | Score: %d ",
		g.cfg.Electrical.Voltage, g.cfg.Electrical.Resistance, g.Current(), g.score)
	dst.DrawText(2, 1, info)

	dst.DrawTextColor(2, 2, " Click wires to toggle. Click the switch. Press R to reset. ", core.ColorGray)
	dst.DrawTextColor(2, 3, " "+g.hint+" ", core.ColorCyan)
}
