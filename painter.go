package tgl

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Painter draws a Canvas to a terminal, only emitting the cells that have
// changed since the previous frame.
type Painter struct {
	w  io.Writer
	sb strings.Builder
}

// NewPainter creates a Painter that writes escape sequences to w.
func NewPainter(w io.Writer) *Painter {
	return &Painter{w: w}
}

// Repaint compares the composited canvas with the previously painted frame and
// writes one batch of escape sequences for the cells that differ.
// Each changed cell is written as color, position, glyph and reset.
// The previous frame is then replaced by the full composited frame.
// Returns the number of cells that were written.
func (p *Painter) Repaint(c *Canvas) (int, error) {
	c.mut.Lock()
	defer c.mut.Unlock()

	p.sb.Reset()
	changed := 0
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cell := c.compositeAtNoLock(x, y)
			if cell == c.prev.At(x, y) {
				continue
			}
			p.sb.WriteString(cell.Color.String())
			fmt.Fprintf(&p.sb, cursorHomeTemplate, y+1, x+1)
			p.sb.WriteRune(cell.R)
			p.sb.WriteString(NoColor)
			c.prev.Set(x, y, cell)
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}
	if err := writeAll(p.w, []byte(p.sb.String())); err != nil {
		// Forget what was painted, so that the next frame is complete
		c.prev.Reset()
		return 0, errors.Wrap(err, "could not write frame")
	}
	return changed, nil
}

// Invalidate forgets the previously painted frame, so that the next Repaint
// writes every non-empty cell. Use it after the screen has been cleared.
func (p *Painter) Invalidate(c *Canvas) {
	c.mut.Lock()
	c.prev.Reset()
	c.mut.Unlock()
}

// writeAll writes the complete byte slice to w, retrying on partial writes.
func writeAll(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		data = data[n:]
	}
	return nil
}
