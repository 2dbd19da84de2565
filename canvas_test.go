package tgl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerPrecedence(t *testing.T) {
	c := NewCanvas(4, 4)

	c.SetCell(1, 1, '.', Background, Green)
	assert.Equal(t, Cell{'.', Green}, c.CompositeAt(1, 1))

	c.SetCell(1, 1, 'o', Objects, Yellow)
	assert.Equal(t, Cell{'o', Yellow}, c.CompositeAt(1, 1))

	c.SetCell(1, 1, '@', Actors, Red)
	assert.Equal(t, Cell{'@', Red}, c.CompositeAt(1, 1))

	// A lower layer does not show through a higher one that has content
	c.SetCell(1, 1, ',', Background, Blue)
	assert.Equal(t, Cell{'@', Red}, c.CompositeAt(1, 1))

	// A space lets the layers below show through
	c.SetCell(1, 1, ' ', Actors, Red)
	assert.Equal(t, Cell{'o', Yellow}, c.CompositeAt(1, 1))
}

func TestLayerPrecedenceAllCombinations(t *testing.T) {
	glyphs := [LayerCount]rune{'b', 'o', 'a'}
	for mask := 0; mask < 1<<LayerCount; mask++ {
		c := NewCanvas(1, 1)
		want := Blank
		for layer := Background; layer <= Actors; layer++ {
			if mask&(1<<layer) != 0 {
				c.SetCell(0, 0, glyphs[layer], layer, Color(31+int(layer)))
				want = Cell{glyphs[layer], Color(31 + int(layer))}
			}
		}
		assert.Equal(t, want, c.CompositeAt(0, 0), "mask %03b", mask)
	}
}

func TestClearAllLayers(t *testing.T) {
	c := NewCanvas(3, 3)
	c.WriteText(0, 0, "abc", Background, Red)
	c.WriteText(0, 1, "def", Objects, Green)
	c.WriteText(0, 2, "ghi", Actors, Blue)
	c.ClearAllLayers()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, Blank, c.CompositeAt(x, y))
		}
	}
}

func TestClearLayerOnlyAffectsOneLayer(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetCell(0, 0, 'b', Background, Red)
	c.SetCell(0, 0, 'o', Objects, Green)
	c.ClearLayer(Objects)
	assert.Equal(t, Cell{'b', Red}, c.CompositeAt(0, 0))

	// Unknown layers are ignored
	c.ClearLayer(Layer(7))
	c.SetCell(0, 0, 'x', Layer(-1), Red)
	assert.Equal(t, Cell{'b', Red}, c.CompositeAt(0, 0))
}

func TestWriteTextClipsPerRune(t *testing.T) {
	c := NewCanvas(5, 1)
	c.WriteText(-2, 0, "Hello, World!", Objects, Green)
	assert.Equal(t, "llo, \n", c.String())

	c.ClearAllLayers()
	c.WriteText(3, 0, "øl!", Objects, Green)
	assert.Equal(t, "   øl\n", c.String())
}

func TestClearCellAndRect(t *testing.T) {
	c := NewCanvas(4, 3)
	for y := 0; y < 3; y++ {
		c.WriteText(0, y, "####", Objects, Red)
	}
	c.ClearCell(0, 0, Objects)
	c.ClearRect(2, 1, 5, 5, Objects)
	assert.Equal(t, " ###\n##  \n##  \n", c.String())
}

func TestOutOfBoundsWrites(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetCell(1, 1, 'x', Actors, Red)
	before := c.Composite()

	require.NotPanics(t, func() {
		c.SetCell(-1, 0, '!', Actors, Red)
		c.SetCell(3, 0, '!', Actors, Red)
		c.SetCell(0, -1, '!', Background, Red)
		c.SetCell(0, 2, '!', Objects, Red)
		c.ClearCell(9, 9, Actors)
		c.ClearRect(-5, -5, 2, 2, Actors)
	})
	assert.True(t, before.Equal(c.Composite()))
	assert.Equal(t, Blank, c.CompositeAt(-1, 0))
}

func TestResizeSameSizeKeepsContent(t *testing.T) {
	c := NewCanvas(4, 2)
	c.WriteText(0, 0, "keep", Background, Cyan)
	before := c.String()
	c.Resize(4, 2)
	assert.Equal(t, before, c.String())
	assert.Equal(t, Cell{'k', Cyan}, c.CompositeAt(0, 0))
}

func TestResizeNewSizeResetsContent(t *testing.T) {
	c := NewCanvas(4, 2)
	c.WriteText(0, 0, "gone", Actors, Cyan)
	c.Resize(6, 3)
	w, h := c.Size()
	assert.Equal(t, 6, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, 6, c.Width())
	assert.Equal(t, 3, c.Height())
	if diff := cmp.Diff(NewGrid(6, 3), c.Composite(), cmp.AllowUnexported(Grid{})); diff != "" {
		t.Errorf("resized canvas is not blank (-want +got):\n%s", diff)
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetCell(0, 0, 'a', Background, Red)
	c.SetCell(2, 1, 'z', Actors, Red)
	assert.Equal(t, "a  \n  z\n", c.String())
}
