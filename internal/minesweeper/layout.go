package minesweeper

import (
	"fmt"
	"math"
)

// Layout describes where the grid sits on screen. Coordinates use a
// bottom-left origin. Each cell occupies Pitch x Pitch pixels; a click only
// counts when its offset inside the cell is strictly between Margin and
// Inner on both axes.
type Layout struct {
	Size         int
	OriginX      int
	OriginY      int
	Pitch        int
	Margin       int
	Inner        int
	CenterOffset int
}

// DefaultLayout is the 6x6 board at (42, 42) with 53px cells.
func DefaultLayout() Layout {
	return Layout{
		Size:         6,
		OriginX:      42,
		OriginY:      42,
		Pitch:        53,
		Margin:       3,
		Inner:        47,
		CenterOffset: 25,
	}
}

// Validate reports a layout CellAt cannot map.
func (l Layout) Validate() error {
	switch {
	case l.Size <= 0:
		return fmt.Errorf("minesweeper: board size must be positive, got %d", l.Size)
	case l.Pitch <= 0:
		return fmt.Errorf("minesweeper: cell pitch must be positive, got %d", l.Pitch)
	case l.Margin < 0:
		return fmt.Errorf("minesweeper: cell margin must not be negative, got %d", l.Margin)
	case l.Inner <= l.Margin+1 || l.Inner > l.Pitch:
		return fmt.Errorf("minesweeper: cell inner edge %d must lie in (%d, %d]", l.Inner, l.Margin+1, l.Pitch)
	}
	return nil
}

// CellAt maps a screen position to the cell under it. ok is false outside
// the grid and inside the dead border between cells.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	x, okX := l.axis(px - l.OriginX)
	y, okY := l.axis(py - l.OriginY)
	if !okX || !okY {
		return 0, 0, false
	}
	return x, y, true
}

func (l Layout) axis(offset int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	idx, rem := offset/l.Pitch, offset%l.Pitch
	if idx >= l.Size || rem <= l.Margin || rem >= l.Inner {
		return 0, false
	}
	return idx, true
}

// CellOrigin returns the bottom-left corner of cell (x, y).
func (l Layout) CellOrigin(x, y int) (float64, float64) {
	return float64(l.OriginX + l.Pitch*x), float64(l.OriginY + l.Pitch*y)
}

// CellCenter returns the point the sonar measures distance from.
func (l Layout) CellCenter(x, y int) (float64, float64) {
	ox, oy := l.CellOrigin(x, y)
	return ox + float64(l.CenterOffset), oy + float64(l.CenterOffset)
}

// DefaultSonarFalloff is the divisor applied to the squared distance.
const DefaultSonarFalloff = 1600.0

// SonarIntensity sums exp(-d²/falloff) over every hidden mine, where d is
// the distance between the mine's cell center and (cx, cy).
func SonarIntensity(g *Grid, l Layout, cx, cy, falloff float64) float64 {
	total := 0.0
	g.Each(func(x, y int, c Cell) {
		if c != MineHidden {
			return
		}
		mx, my := l.CellCenter(x, y)
		dx, dy := mx-cx, my-cy
		total += math.Exp(-(dx*dx + dy*dy) / falloff)
	})
	return total
}
