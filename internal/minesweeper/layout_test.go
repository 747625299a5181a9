package minesweeper

import (
	"math"
	"testing"
)

func TestCellAt(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		name   string
		px, py int
		x, y   int
		ok     bool
	}{
		{"first cell interior", 46, 46, 0, 0, true},
		{"first cell far interior", 42 + 46, 42 + 46, 0, 0, true},
		{"second column", 42 + 53 + 20, 42 + 20, 1, 0, true},
		{"last cell", 42 + 5*53 + 20, 42 + 5*53 + 20, 5, 5, true},
		{"left margin edge", 42 + 3, 60, 0, 0, false},
		{"inner edge", 42 + 47, 60, 0, 0, false},
		{"on boundary", 42 + 53, 60, 0, 0, false},
		{"one before boundary", 42 + 52, 60, 0, 0, false},
		{"one after boundary", 42 + 54, 60, 0, 0, false},
		{"vertical margin", 60, 42 + 2*53 + 1, 0, 0, false},
		{"left of grid", 30, 60, 0, 0, false},
		{"just left of origin", 41, 60, 0, 0, false},
		{"below grid", 60, 10, 0, 0, false},
		{"right of grid", 42 + 6*53 + 20, 60, 0, 0, false},
		{"above grid", 60, 42 + 6*53 + 20, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := l.CellAt(tt.px, tt.py)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v at (%d, %d), got %v", tt.ok, tt.px, tt.py, ok)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("Expected cell (%d, %d), got (%d, %d)", tt.x, tt.y, x, y)
			}
		})
	}
}

func TestCellCenter(t *testing.T) {
	l := DefaultLayout()

	x, y := l.CellCenter(0, 0)
	if x != 67 || y != 67 {
		t.Errorf("Expected center (67, 67), got (%v, %v)", x, y)
	}

	x, y = l.CellCenter(2, 5)
	if x != 67+2*53 || y != 67+5*53 {
		t.Errorf("Expected center (%d, %d), got (%v, %v)", 67+2*53, 67+5*53, x, y)
	}
}

func TestSonarIntensity(t *testing.T) {
	l := DefaultLayout()
	g := NewGrid(l.Size)
	g.Set(1, 1, MineHidden)

	cx, cy := l.CellCenter(1, 1)
	if got := SonarIntensity(g, l, cx, cy, DefaultSonarFalloff); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected intensity 1 directly over a mine, got %v", got)
	}

	// 40px away: exp(-1600/1600)
	if got := SonarIntensity(g, l, cx+40, cy, DefaultSonarFalloff); math.Abs(got-math.Exp(-1)) > 1e-9 {
		t.Errorf("Expected intensity %v at 40px, got %v", math.Exp(-1), got)
	}

	g.Set(4, 4, MineHidden)
	near := SonarIntensity(g, l, cx, cy, DefaultSonarFalloff)
	if near <= 1 {
		t.Errorf("Expected a second mine to add to the intensity, got %v", near)
	}
}

func TestSonarIgnoresRevealedAndFlaggedMines(t *testing.T) {
	l := DefaultLayout()
	g := NewGrid(l.Size)
	g.Set(0, 0, MineMarked)
	g.Set(1, 0, MineExploded)

	cx, cy := l.CellCenter(0, 0)
	if got := SonarIntensity(g, l, cx, cy, DefaultSonarFalloff); got != 0 {
		t.Errorf("Expected zero intensity with no hidden mines, got %v", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Fatalf("Expected default layout to validate, got %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Layout)
	}{
		{"zero size", func(l *Layout) { l.Size = 0 }},
		{"zero pitch", func(l *Layout) { l.Pitch = 0 }},
		{"negative margin", func(l *Layout) { l.Margin = -1 }},
		{"no clickable band", func(l *Layout) { l.Inner = l.Margin + 1 }},
		{"inner past pitch", func(l *Layout) { l.Inner = l.Pitch + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.modify(&l)
			if err := l.Validate(); err == nil {
				t.Errorf("Expected %+v to be rejected", l)
			}
		})
	}
}
