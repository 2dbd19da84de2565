package tgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridIsBlank(t *testing.T) {
	g := NewGrid(3, 2)
	w, h := g.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, Blank, g.At(x, y))
		}
	}
}

func TestGridSetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(-1, 0, Cell{'x', Red})
	g.Set(2, 0, Cell{'x', Red})
	g.Set(0, 2, Cell{'x', Red})
	assert.True(t, g.Equal(NewGrid(2, 2)))
}

func TestGridCopyFrom(t *testing.T) {
	a := NewGrid(2, 2)
	a.Set(1, 1, Cell{'#', Blue})
	b := NewGrid(2, 2)
	b.CopyFrom(a)
	assert.True(t, a.Equal(b))

	c := NewGrid(3, 3)
	c.CopyFrom(a)
	assert.True(t, c.Equal(NewGrid(3, 3)), "grids of another size are not copied")
}

func TestNegativeGridSize(t *testing.T) {
	w, h := NewGrid(-4, 2).Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 2, h)
}
