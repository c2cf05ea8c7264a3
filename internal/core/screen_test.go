package core

import (
	"strings"
	"testing"
)

func TestScreenNewAndClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, want 10x5", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if got := s.Get(x, y); got != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want space", x, y, got)
			}
		}
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, 'Y', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v, want red 'Y'", cell)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these may panic or alter the buffer.
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if !strings.ContainsRune(s.String(), ' ') || strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds writes leaked into the buffer")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("row = %q", s.Row(1))
	}

	// Clipped at the right edge.
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Errorf("clipped row = %q", s.Row(0))
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColor(0, 0, "ok", ColorBrightGreen)
	if c := s.GetCell(0, 0); c.Color != ColorBrightGreen {
		t.Errorf("color = %v, want bright green", c.Color)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 5)

	s.DrawRect(NewRect(1, 1, 3, 2), '#')
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("cell (%d,%d) = %q, want '#'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(4, 1) == '#' || s.Get(1, 3) == '#' {
		t.Error("fill leaked outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 4))

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Errorf("box corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("box edges wrong:\n%s", s.String())
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)

	// A perfect diagonal visits every (i, i).
	s.DrawLine(0, 0, 9, 9, '\\', ColorDefault)
	for i := 0; i < 10; i++ {
		if s.Get(i, i) != '\\' {
			t.Errorf("diagonal missing at (%d,%d)", i, i)
		}
	}

	s.Clear()
	s.DrawLine(0, 5, 9, 5, '-', ColorDefault)
	if s.Row(5) != "----------" {
		t.Errorf("horizontal line row = %q", s.Row(5))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	s.Resize(20, 10)
	if s.Get(2, 2) != 'A' {
		t.Error("resize should preserve existing content")
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("dimensions = %dx%d, want 20x10", s.Width(), s.Height())
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != 'A' {
		t.Error("shrinking should keep content inside the new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}
