package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(30, 10)

	if s.Width() != 30 || s.Height() != 10 {
		t.Fatalf("size = %dx%d, expected 30x10", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetColored(3, 2, '$', ColorYellow)

	c := s.GetCell(3, 2)
	if c.Rune != '$' || c.Color != ColorYellow {
		t.Errorf("GetCell(3, 2) = %+v, expected yellow '$'", c)
	}
	if s.Get(3, 2) != '$' {
		t.Errorf("Get(3, 2) = %q, expected '$'", s.Get(3, 2))
	}

	s.Set(3, 2, '#')
	if s.GetCell(3, 2).Color != ColorDefault {
		t.Error("Set should reset the color")
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 5}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 2), '=', ColorBrown)

	tests := []struct {
		x, y int
		want rune
	}{
		{2, 2, '='},
		{4, 3, '='},
		{5, 2, ' '},
		{2, 4, ' '},
		{1, 1, ' '},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
		}
	}
	if s.GetCell(3, 3).Color != ColorBrown {
		t.Error("DrawRect should apply the color")
	}
}

func TestScreenDrawTextClipsAndCenters(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextColored(9, 0, "SCORE", ColorCyan)
	if s.Row(0) != "         SCO" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(10, 0).Color != ColorCyan {
		t.Error("DrawTextColored should apply the color")
	}

	s.DrawTextCentered(1, "♥♥")
	if s.Get(5, 1) != '♥' || s.Get(6, 1) != '♥' {
		t.Errorf("centered multibyte text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 1))
	if s.Get(0, 0) != ' ' {
		t.Error("degenerate box should draw nothing")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "LIVES", ColorRed)

	s.Resize(3, 2)
	if s.Row(0) != "LIV" {
		t.Errorf("Row(0) = %q after shrinking", s.Row(0))
	}

	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "LIV") {
		t.Errorf("Row(0) = %q after growing", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorRed {
		t.Error("Resize should keep colors")
	}
	if s.Row(-1) != "        " {
		t.Errorf("Row(-1) = %q, expected blank row", s.Row(-1))
	}
}
