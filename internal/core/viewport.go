package core

// Viewport maps a fixed-size world coordinate space onto a terminal screen
// of arbitrary dimensions. Games simulate in world units so their tuning
// constants stay meaningful regardless of terminal size; only rendering and
// click handling go through the projection.
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// NewViewport creates a viewport projecting the given world size onto the
// given screen size.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: screenW, ScreenH: screenH}
}

// scale returns the world-to-screen scale factors for each axis.
// Axes scale independently; terminal cells are not square anyway.
func (vp Viewport) scale() (float64, float64) {
	sx, sy := 1.0, 1.0
	if vp.WorldW > 0 {
		sx = float64(vp.ScreenW) / vp.WorldW
	}
	if vp.WorldH > 0 {
		sy = float64(vp.ScreenH) / vp.WorldH
	}
	return sx, sy
}

// ToScreen converts a world point to a screen cell.
func (vp Viewport) ToScreen(p Vec) (int, int) {
	sx, sy := vp.scale()
	x := Clamp(int(p.X*sx), 0, vp.ScreenW-1)
	y := Clamp(int(p.Y*sy), 0, vp.ScreenH-1)
	return x, y
}

// ToWorld converts a screen cell to the world point at its center.
// Used to translate mouse clicks back into world coordinates.
func (vp Viewport) ToWorld(x, y int) Vec {
	sx, sy := vp.scale()
	if sx == 0 || sy == 0 {
		return Vec{}
	}
	return Vec{
		X: (float64(x) + 0.5) / sx,
		Y: (float64(y) + 0.5) / sy,
	}
}

// RectToScreen converts a world rectangle to screen cells. The result is
// always at least one cell wide and tall so thin objects stay visible.
func (vp Viewport) RectToScreen(r RectF) Rect {
	sx, sy := vp.scale()
	x0 := int(r.X * sx)
	y0 := int(r.Y * sy)
	x1 := int((r.X + r.W) * sx)
	y1 := int((r.Y + r.H) * sy)
	return Rect{
		X: x0,
		Y: y0,
		W: Max(1, x1-x0),
		H: Max(1, y1-y0),
	}
}
