package tgl

// Drawable is anything that can draw itself on a Canvas
type Drawable interface {
	Draw(c *Canvas)
}

// Sprite is a single glyph with a position, color and layer
type Sprite struct {
	X, Y  int
	Glyph rune
	Color Color
	Layer Layer
}

// NewSprite creates a sprite on the Actors layer
func NewSprite(x, y int, glyph rune, color Color) *Sprite {
	return &Sprite{X: x, Y: y, Glyph: glyph, Color: color, Layer: Actors}
}

// Draw places the sprite on the canvas
func (s *Sprite) Draw(c *Canvas) {
	c.SetCell(s.X, s.Y, s.Glyph, s.Layer, s.Color)
}

// Erase clears the cell the sprite is on
func (s *Sprite) Erase(c *Canvas) {
	c.ClearCell(s.X, s.Y, s.Layer)
}

// MoveTo erases the sprite, moves it to (x, y) and draws it again
func (s *Sprite) MoveTo(c *Canvas, x, y int) {
	s.Erase(c)
	s.X, s.Y = x, y
	s.Draw(c)
}

// MoveBy moves the sprite by (dx, dy), but keeps it within the canvas
func (s *Sprite) MoveBy(c *Canvas, dx, dy int) {
	w, h := c.Size()
	s.MoveTo(c, clamp(s.X+dx, 0, w-1), clamp(s.Y+dy, 0, h-1))
}

// Step moves the sprite one cell in the direction of an arrow key.
// Other keys are ignored. Returns true if the key was an arrow key.
func (s *Sprite) Step(c *Canvas, k Key) bool {
	switch k {
	case KeyUp:
		s.MoveBy(c, 0, -1)
	case KeyDown:
		s.MoveBy(c, 0, 1)
	case KeyLeft:
		s.MoveBy(c, -1, 0)
	case KeyRight:
		s.MoveBy(c, 1, 0)
	default:
		return false
	}
	return true
}

// DrawAll draws all the given drawables, in order
func DrawAll(c *Canvas, ds ...Drawable) {
	for _, d := range ds {
		d.Draw(c)
	}
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
