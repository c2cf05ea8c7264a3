package core

import "testing"

func TestViewportToScreen(t *testing.T) {
	vp := NewViewport(700, 450, 70, 45) // Exact 10:1 scale on both axes

	x, y := vp.ToScreen(V(350, 225))
	if x != 35 || y != 22 {
		t.Errorf("ToScreen(350,225) = (%d,%d), want (35,22)", x, y)
	}

	// Results are clamped onto the screen even for out-of-field points.
	x, y = vp.ToScreen(V(-50, 9999))
	if x != 0 || y != 44 {
		t.Errorf("ToScreen out of field = (%d,%d), want (0,44)", x, y)
	}
}

func TestViewportToWorldRoundTrip(t *testing.T) {
	vp := NewViewport(900, 500, 90, 50)

	// A world point projected to a cell maps back into that same cell's
	// world footprint.
	p := V(480, 210)
	x, y := vp.ToScreen(p)
	back := vp.ToWorld(x, y)

	if back.X < p.X-10 || back.X > p.X+10 || back.Y < p.Y-10 || back.Y > p.Y+10 {
		t.Errorf("round trip drifted: %v -> (%d,%d) -> %v", p, x, y, back)
	}
}

func TestViewportRectToScreenMinimumSize(t *testing.T) {
	// A world rect smaller than one cell still renders as one cell.
	vp := NewViewport(700, 450, 70, 45)

	r := vp.RectToScreen(NewRectF(100, 100, 2, 2))
	if r.W < 1 || r.H < 1 {
		t.Errorf("RectToScreen returned empty rect %+v", r)
	}
}

func TestInputFrameActionsAndClicks(t *testing.T) {
	f := NewInputFrame()

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("action set/has mismatch")
	}

	f.AddClick(Click{X: 3, Y: 4})
	f.AddClick(Click{X: 5, Y: 6})
	if len(f.Clicks) != 2 || f.Clicks[0] != (Click{X: 3, Y: 4}) {
		t.Errorf("clicks = %+v", f.Clicks)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) || len(f.Clicks) != 0 {
		t.Error("clear should drop actions and clicks")
	}
	if !clone.Has(ActionLeft) || len(clone.Clicks) != 2 {
		t.Error("clone should be unaffected by clear")
	}
}
