package tgl

import (
	"image"
	"image/color"

	"github.com/xyproto/burnfont"
)

const (
	// bannerCharWidth and bannerHeight leave room around each burnfont glyph
	bannerCharWidth = 10
	bannerHeight    = 32
	bannerMargin    = 8
)

// rasterize draws text with the burnfont bitmap font and returns the lit
// pixels as rows of booleans, trimmed to the smallest rectangle that holds them.
func rasterize(text string) [][]bool {
	n := len([]rune(text))
	if n == 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, n*bannerCharWidth+2*bannerMargin, bannerHeight))
	burnfont.DrawString(img, bannerMargin, bannerMargin, text, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, -1, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < 0 {
		return nil
	}
	rows := make([][]bool, maxY-minY+1)
	for y := range rows {
		rows[y] = make([]bool, maxX-minX+1)
		for x := range rows[y] {
			rows[y][x] = img.RGBAAt(minX+x, minY+y).A != 0
		}
	}
	return rows
}

// WriteBanner writes text in large letters, with one glyph per lit pixel of
// the burnfont bitmap font, starting at (x, y). Unlit pixels are left as they are.
// Returns the width and height of the banner, in cells.
func (c *Canvas) WriteBanner(x, y int, text string, layer Layer, fg Color, glyph rune) (int, int) {
	rows := rasterize(text)
	if len(rows) == 0 {
		return 0, 0
	}
	c.mut.Lock()
	defer c.mut.Unlock()
	for dy, row := range rows {
		for dx, lit := range row {
			if lit {
				c.setCellNoLock(x+dx, y+dy, Cell{glyph, fg}, layer)
			}
		}
	}
	return len(rows[0]), len(rows)
}
