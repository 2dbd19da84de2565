package tgl

// Direction is one of the eight compass directions around a cell
type Direction string

const (
	Up        Direction = "up"
	Down      Direction = "down"
	Left      Direction = "left"
	Right     Direction = "right"
	UpLeft    Direction = "up_left"
	UpRight   Direction = "up_right"
	DownLeft  Direction = "down_left"
	DownRight Direction = "down_right"
)

// Directions lists all eight directions, in a fixed order
var Directions = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

var directionOffsets = map[Direction][2]int{
	Up:        {0, -1},
	Down:      {0, 1},
	Left:      {-1, 0},
	Right:     {1, 0},
	UpLeft:    {-1, -1},
	UpRight:   {1, -1},
	DownLeft:  {-1, 1},
	DownRight: {1, 1},
}

// Offset returns the (dx, dy) step for this direction.
func (d Direction) Offset() (int, int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

// Neighbor is the composited cell next to a coordinate.
// OnGrid is false when the neighbor is outside of the canvas.
type Neighbor struct {
	Cell
	OnGrid bool
}

// Neighbors returns the composited cells in all eight directions around (x, y).
// The map always has eight entries. Off-grid entries have OnGrid set to false.
func (c *Canvas) Neighbors(x, y int) map[Direction]Neighbor {
	c.mut.RLock()
	defer c.mut.RUnlock()
	m := make(map[Direction]Neighbor, len(Directions))
	for _, d := range Directions {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if !c.prev.InBounds(nx, ny) {
			m[d] = Neighbor{}
			continue
		}
		m[d] = Neighbor{Cell: c.compositeAtNoLock(nx, ny), OnGrid: true}
	}
	return m
}

// SurroundedBy checks if all eight neighbors of (x, y) show r.
// A neighbor outside of the canvas never matches.
func (c *Canvas) SurroundedBy(x, y int, r rune) bool {
	for _, n := range c.Neighbors(x, y) {
		if !n.OnGrid || n.R != r {
			return false
		}
	}
	return true
}
