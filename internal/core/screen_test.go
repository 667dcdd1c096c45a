package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 2, 'o', ColorRed)

	c := s.GetCell(1, 2)
	if c.Rune != 'o' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 2) = %+v, expected red 'o'", c)
	}

	s.Set(1, 2, 'x')
	if c := s.GetCell(1, 2); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')
	if s.Get(4, 4) != '#' {
		t.Errorf("After Fill, expected '#', got %q", s.Get(4, 4))
	}

	s.Clear()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	// Text running off the right edge is clipped.
	s.DrawText(17, 0, "ABCDE")
	if got := s.Row(0); !strings.HasSuffix(got, "ABC") {
		t.Errorf("Row(0) = %q, expected clipped suffix ABC", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")
	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' {
		t.Errorf("centered text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(s.Bounds(), ColorWhite)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox output:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), '#', ColorBlue)

	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		c := s.GetCell(p[0], p[1])
		if c.Rune != '#' || c.Color != ColorBlue {
			t.Errorf("cell %v = %+v, expected blue '#'", p, c)
		}
	}
	if s.Get(3, 1) != ' ' || s.Get(0, 0) != ' ' {
		t.Error("DrawRect wrote outside its rectangle")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Set(3, 3, 'Y')

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(1, 1) != 'X' || s.Get(5, 5) != ' ' {
		t.Error("growing the screen should keep old content and blank the rest")
	}
}

func TestScreenDrawMessage(t *testing.T) {
	s := NewScreen(30, 9)
	s.DrawMessage("PAUSED", "P to resume")

	out := s.String()
	if !strings.Contains(out, "PAUSED") || !strings.Contains(out, "P to resume") {
		t.Errorf("DrawMessage output missing text:\n%s", out)
	}
}
