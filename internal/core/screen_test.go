package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'K', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'K' || cell.Color != ColorRed {
		t.Errorf("cell = %+v, want K in red", cell)
	}

	// Out-of-bounds writes are ignored, reads come back blank.
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	s.SetCell(0, 5, 'x', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds read = %+v, want blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', ColorYellow)
	s.Clear()
	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after clear = %+v, want blank default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(2, 1, 'A')

	s.Resize(8, 5)
	if s.Width() != 8 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 8x5", s.Width(), s.Height())
	}
	if s.Get(2, 1) != 'A' {
		t.Error("content lost growing the screen")
	}

	s.Resize(3, 2)
	if s.Get(2, 1) != 'A' {
		t.Error("content lost shrinking the screen")
	}
	if s.Get(5, 1) != ' ' {
		t.Error("out-of-bounds after shrink should read blank")
	}
}

func TestDrawTextClipping(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColored(3, 0, "10♦", ColorRed)
	if s.Get(3, 0) != '1' || s.Get(4, 0) != '0' {
		t.Errorf("row = %q", s.Row(0))
	}
	// The suit rune falls off the right edge.
	if strings.ContainsRune(s.String(), '♦') {
		t.Error("clipped rune leaked into the buffer")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("edges wrong:\n%s", s.String())
	}
	if s.Get(2, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')
	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("corner points should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) {
		t.Error("right/bottom edges are exclusive")
	}
}
