package minesweeper

import "math/rand"

// Grid is a square board indexed [x][y]. Row 0 is the bottom row.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a size x size grid filled with BlankHidden.
func NewGrid(size int) *Grid {
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	g.Fill(BlankHidden)
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the cell at (x, y). The caller must check InBounds.
func (g *Grid) At(x, y int) Cell {
	return g.cells[x*g.size+y]
}

// Set stores c at (x, y). The caller must check InBounds.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[x*g.size+y] = c
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Each calls fn for every cell, column by column.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			fn(x, y, g.At(x, y))
		}
	}
}

// Count returns the number of cells matching pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// apply runs an action over every cell.
func (g *Grid) apply(a Action) {
	for i, c := range g.cells {
		g.cells[i] = Apply(c, a)
	}
}

// seedMines places exactly n hidden mines. A linear index is drawn
// uniformly from [0, size*size); draws that land on a mine are retried.
// n must be smaller than the number of cells.
func (g *Grid) seedMines(rng *rand.Rand, n int) {
	total := g.size * g.size
	for placed := 0; placed < n; {
		pos := rng.Intn(total)
		x, y := pos/g.size, pos%g.size
		if g.At(x, y) == MineHidden {
			continue
		}
		g.Set(x, y, MineHidden)
		placed++
	}
}
