package tgl

// Cell holds a single glyph and its color.
// A space means "nothing here", so the layer below shows through.
type Cell struct {
	R     rune
	Color Color
}

// Blank is the empty cell every grid starts out with.
var Blank = Cell{R: ' ', Color: DefaultColor}

// Empty reports if this cell lets the layer below show through.
func (cell Cell) Empty() bool {
	return cell.R == ' '
}

// Grid is a fixed size, row-major 2-D array of cells.
type Grid struct {
	cells []Cell
	w     int
	h     int
}

// NewGrid creates a w×h grid where every cell is Blank.
// Negative dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{
		cells: make([]Cell, w*h),
		w:     w,
		h:     h,
	}
	g.Reset()
	return g
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (int, int) {
	return g.w, g.h
}

// InBounds checks if (x, y) is a valid coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// At returns the cell at (x, y). The coordinate must be in bounds.
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.w+x]
}

// Set stores a cell at (x, y). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, cell Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = cell
}

// Reset sets every cell to Blank.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
}

// CopyFrom copies all cells from another grid of the same size.
// Grids of a different size are left untouched.
func (g *Grid) CopyFrom(other *Grid) {
	if other.w != g.w || other.h != g.h {
		return
	}
	copy(g.cells, other.cells)
}

// Equal checks if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, cell := range g.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}
