package dodge

import (
	"fmt"

	"github.com/akulagin/mini-arcade/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.vp.ScreenW = dst.Width()
	g.vp.ScreenH = dst.Height()

	g.drawStars(dst)

	dst.DrawRectColor(g.vp.RectToScreen(g.enemyRect()), EnemyChar, core.ColorBrightRed)
	dst.DrawRectColor(g.vp.RectToScreen(g.playerRect()), PlayerChar, core.ColorBrightCyan)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", g.score, g.highScore))
	}
}

// drawStars renders the background field. Brightness picks the glyph and
// color so the stars visibly twinkle.
func (g *Game) drawStars(dst *core.Screen) {
	for _, s := range g.stars {
		x, y := g.vp.ToScreen(core.V(s.X, s.Y))
		switch b := s.Brightness(); {
		case b > 0.8:
			dst.SetCell(x, y, '✦', core.ColorBrightWhite)
		case b > 0.4:
			dst.SetCell(x, y, '*', core.ColorGray)
		default:
			dst.SetCell(x, y, '·', core.ColorDarkGray)
		}
	}
}

// drawHUD draws score, best and current fall speed along the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", g.score, g.highScore))

	speedText := fmt.Sprintf(" Spd: %.1f ", g.speed)
	dst.DrawTextColor(dst.Width()-len(speedText)-2, 0, speedText, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
