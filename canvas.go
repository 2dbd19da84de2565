package tgl

import (
	"strings"
	"sync"
)

// Layer selects one of the three grids of a Canvas
type Layer int

const (
	Background Layer = iota
	Objects
	Actors

	// LayerCount is the number of layers in a Canvas
	LayerCount = 3
)

func (l Layer) valid() bool {
	return l >= Background && l <= Actors
}

// Canvas is a scene of three stacked grids (background, objects and actors)
// plus the previously painted frame, which only the Painter touches.
// All four grids always have the same size.
type Canvas struct {
	mut    *sync.RWMutex
	layers [LayerCount]*Grid
	prev   *Grid
	w      int
	h      int
}

// NewCanvas creates a w×h canvas where every cell on every layer is Blank.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{mut: &sync.RWMutex{}}
	c.rebuild(w, h)
	return c
}

// rebuild replaces all grids at once. The caller must hold the write lock
// (or own the canvas exclusively).
func (c *Canvas) rebuild(w, h int) {
	for i := range c.layers {
		c.layers[i] = NewGrid(w, h)
	}
	c.prev = NewGrid(w, h)
	c.w, c.h = c.prev.Size()
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (int, int) {
	c.mut.RLock()
	defer c.mut.RUnlock()
	return c.w, c.h
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	c.mut.RLock()
	defer c.mut.RUnlock()
	return c.w
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	c.mut.RLock()
	defer c.mut.RUnlock()
	return c.h
}

// SetCell places r with the given color at (x, y) on the given layer.
// Writes outside of the canvas, or to an unknown layer, are ignored.
func (c *Canvas) SetCell(x, y int, r rune, layer Layer, color Color) {
	c.mut.Lock()
	c.setCellNoLock(x, y, Cell{r, color}, layer)
	c.mut.Unlock()
}

func (c *Canvas) setCellNoLock(x, y int, cell Cell, layer Layer) {
	if !layer.valid() {
		return
	}
	c.layers[layer].Set(x, y, cell)
}

// WriteText writes text from (x, y) and rightwards, one rune per cell.
// Runes that land outside of the canvas are dropped one by one.
func (c *Canvas) WriteText(x, y int, text string, layer Layer, color Color) {
	c.mut.Lock()
	defer c.mut.Unlock()
	i := 0
	for _, r := range text {
		c.setCellNoLock(x+i, y, Cell{r, color}, layer)
		i++
	}
}

// ClearCell resets a single cell on one layer.
func (c *Canvas) ClearCell(x, y int, layer Layer) {
	c.mut.Lock()
	c.setCellNoLock(x, y, Blank, layer)
	c.mut.Unlock()
}

// ClearRect resets a w×h rectangle of cells on one layer, starting at (x, y).
// Cells outside of the canvas are skipped.
func (c *Canvas) ClearRect(x, y, w, h int, layer Layer) {
	c.mut.Lock()
	defer c.mut.Unlock()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.setCellNoLock(x+dx, y+dy, Blank, layer)
		}
	}
}

// ClearLayer resets every cell of one layer. The other layers are unaffected.
func (c *Canvas) ClearLayer(layer Layer) {
	if !layer.valid() {
		return
	}
	c.mut.Lock()
	c.layers[layer].Reset()
	c.mut.Unlock()
}

// ClearAllLayers resets every cell of every layer.
func (c *Canvas) ClearAllLayers() {
	c.mut.Lock()
	for _, g := range c.layers {
		g.Reset()
	}
	c.mut.Unlock()
}

// Resize changes the size of the canvas. If the size differs, all layers and
// the previous frame are replaced by Blank grids of the new size.
// If the size is the same, nothing happens and the contents are kept.
func (c *Canvas) Resize(w, h int) {
	c.mut.Lock()
	defer c.mut.Unlock()
	if w == c.w && h == c.h {
		return
	}
	c.rebuild(w, h)
}

// CompositeAt returns what is visible at (x, y): the cell of the topmost layer
// that is not a space, or Blank if every layer is empty there.
// Out of bounds coordinates also give Blank.
func (c *Canvas) CompositeAt(x, y int) Cell {
	c.mut.RLock()
	defer c.mut.RUnlock()
	if !c.prev.InBounds(x, y) {
		return Blank
	}
	return c.compositeAtNoLock(x, y)
}

// compositeAtNoLock requires (x, y) to be in bounds.
func (c *Canvas) compositeAtNoLock(x, y int) Cell {
	for layer := Actors; layer >= Background; layer-- {
		if cell := c.layers[layer].At(x, y); !cell.Empty() {
			return cell
		}
	}
	return Blank
}

// Composite returns a new grid with the composited frame.
func (c *Canvas) Composite() *Grid {
	c.mut.RLock()
	defer c.mut.RUnlock()
	g := NewGrid(c.w, c.h)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			g.Set(x, y, c.compositeAtNoLock(x, y))
		}
	}
	return g
}

// String returns the composited canvas as plain text, one row per line.
func (c *Canvas) String() string {
	var sb strings.Builder
	c.mut.RLock()
	sb.Grow((c.w + 1) * c.h)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			sb.WriteRune(c.compositeAtNoLock(x, y).R)
		}
		sb.WriteRune('\n')
	}
	c.mut.RUnlock()
	return sb.String()
}
