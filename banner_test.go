package tgl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteBanner(t *testing.T) {
	c := NewCanvas(80, 24)
	w, h := c.WriteBanner(1, 1, "Hi", Objects, LightGreen, '#')
	assert.Positive(t, w)
	assert.Positive(t, h)
	assert.Positive(t, strings.Count(c.String(), "#"))
	// The top-left corner of the canvas is outside of the banner
	assert.Equal(t, Blank, c.CompositeAt(0, 0))
}

func TestWriteBannerEmpty(t *testing.T) {
	c := NewCanvas(10, 10)
	w, h := c.WriteBanner(0, 0, "", Objects, Red, '#')
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Equal(t, NewCanvas(10, 10).String(), c.String())
}
