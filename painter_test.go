package tgl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepaintWireFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewPainter(&buf)
	c := NewCanvas(3, 2)
	c.SetCell(1, 0, 'x', Actors, Green)

	n, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "\033[32m\033[1;2Hx\033[0m", buf.String())
}

func TestRepaintBlankCanvasEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPainter(&buf)
	n, err := p.Repaint(NewCanvas(10, 5))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestFirstRepaintCoversEveryCell(t *testing.T) {
	var buf bytes.Buffer
	p := NewPainter(&buf)
	c := NewCanvas(8, 4)
	c.WriteText(0, 0, "Hello", Objects, Green)
	c.WriteText(2, 2, "World", Background, Blue)
	c.SetCell(7, 3, '@', Actors, Red)

	n, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, 11, strings.Count(buf.String(), NoColor))
	assert.Contains(t, buf.String(), "\033[31m\033[4;8H@\033[0m")
}

func TestRepaintIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPainter(&buf)
	c := NewCanvas(6, 3)
	c.WriteText(0, 1, "abc", Actors, Yellow)

	_, err := p.Repaint(c)
	require.NoError(t, err)
	buf.Reset()

	n, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestRepaintOnlyChangedCells(t *testing.T) {
	var buf bytes.Buffer
	p := NewPainter(&buf)
	c := NewCanvas(6, 3)
	c.WriteText(0, 0, "abc", Objects, Yellow)
	_, err := p.Repaint(c)
	require.NoError(t, err)
	buf.Reset()

	// Same glyph, new color
	c.SetCell(1, 0, 'b', Objects, Red)
	// Cleared cell must be painted as a space
	c.ClearCell(2, 0, Objects)
	// Writing the same value again is not a change
	c.SetCell(0, 0, 'a', Objects, Yellow)

	n, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "\033[31m\033[1;2Hb\033[0m\033[37m\033[1;3H \033[0m", buf.String())
}

func TestRepaintAfterResize(t *testing.T) {
	var buf bytes.Buffer
	p := NewPainter(&buf)
	c := NewCanvas(2, 2)
	c.SetCell(0, 0, 'a', Actors, Red)
	_, err := p.Repaint(c)
	require.NoError(t, err)

	c.Resize(3, 3)
	c.SetCell(0, 0, 'a', Actors, Red)
	c.SetCell(2, 2, 'b', Actors, Red)
	buf.Reset()
	n, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInvalidate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPainter(&buf)
	c := NewCanvas(4, 1)
	c.WriteText(0, 0, "ab", Background, Red)
	_, err := p.Repaint(c)
	require.NoError(t, err)

	p.Invalidate(c)
	n, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type shortWriter struct {
	buf bytes.Buffer
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > 3 {
		p = p[:3]
	}
	return w.buf.Write(p)
}

func TestRepaintWriteError(t *testing.T) {
	p := NewPainter(failingWriter{})
	c := NewCanvas(2, 1)
	c.SetCell(0, 0, 'x', Actors, Red)
	_, err := p.Repaint(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")

	// The frame was not painted, so it is tried again
	var buf bytes.Buffer
	p = NewPainter(&buf)
	n, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRepaintShortWrites(t *testing.T) {
	w := &shortWriter{}
	p := NewPainter(w)
	c := NewCanvas(2, 1)
	c.SetCell(1, 0, 'y', Actors, Blue)
	_, err := p.Repaint(c)
	require.NoError(t, err)
	assert.Equal(t, "\033[34m\033[1;2Hy\033[0m", w.buf.String())
}
