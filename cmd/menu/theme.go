package main

import (
	"github.com/xyproto/tgl"
)

// Theme holds the colors that are used when drawing widgets
type Theme struct {
	Text, Title, Highlight, Active, Arrow, Border tgl.Color
	TL, TR, BL, BR, VL, VR, HT, HB                rune
}

func NewTheme() *Theme {
	return &Theme{
		Text:      tgl.DarkGray,
		Title:     tgl.LightCyan,
		Highlight: tgl.LightYellow,
		Active:    tgl.LightGreen,
		Arrow:     tgl.LightRed,
		Border:    tgl.Blue,
		TL:        '╭', // top left
		TR:        '╮', // top right
		BL:        '╰', // bottom left
		BR:        '╯', // bottom right
		VL:        '│', // vertical line, left side
		VR:        '│', // vertical line, right side
		HT:        '─', // horizontal line
		HB:        '─', // horizontal bottom line
	}
}

// Box draws a frame on the background layer, with the top left corner at (x, y)
func (t *Theme) Box(c *tgl.Canvas, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	for i := 1; i < w-1; i++ {
		c.SetCell(x+i, y, t.HT, tgl.Background, t.Border)
		c.SetCell(x+i, y+h-1, t.HB, tgl.Background, t.Border)
	}
	for i := 1; i < h-1; i++ {
		c.SetCell(x, y+i, t.VL, tgl.Background, t.Border)
		c.SetCell(x+w-1, y+i, t.VR, tgl.Background, t.Border)
	}
	c.SetCell(x, y, t.TL, tgl.Background, t.Border)
	c.SetCell(x+w-1, y, t.TR, tgl.Background, t.Border)
	c.SetCell(x, y+h-1, t.BL, tgl.Background, t.Border)
	c.SetCell(x+w-1, y+h-1, t.BR, tgl.Background, t.Border)
}
