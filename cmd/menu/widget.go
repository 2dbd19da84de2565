package main

import (
	"github.com/xyproto/tgl"
)

// MenuWidget draws a list of choices with an arrow in front of the selected one
type MenuWidget struct {
	title      string
	theme      *Theme
	choices    []string
	w          int // width
	h          int // height (number of menu items)
	y          int // current position
	oldy       int // previous position
	marginLeft int
	marginTop  int
	selected   int
}

func NewMenuWidget(title string, choices []string, theme *Theme, canvasWidth, canvasHeight int) *MenuWidget {
	maxlen := 0
	for _, choice := range choices {
		maxlen = max(maxlen, len([]rune(choice)))
	}
	marginLeft := 10
	if canvasWidth-(maxlen+marginLeft) <= 0 {
		marginLeft = 0
	}
	marginTop := 2
	if canvasHeight-(len(choices)+marginTop) <= 0 {
		marginTop = 0
	}
	return &MenuWidget{
		title:      title,
		theme:      theme,
		w:          maxlen + len("-> ") + len(" ---"),
		h:          len(choices),
		marginLeft: marginLeft,
		marginTop:  marginTop,
		choices:    choices,
		selected:   -1,
	}
}

func (m *MenuWidget) Selected() int {
	return m.selected
}

func (m *MenuWidget) Draw(c *tgl.Canvas) {
	// Draw the title
	titleHeight := 2
	c.WriteText(m.marginLeft, m.marginTop, m.title, tgl.Objects, m.theme.Title)

	// Draw the menu entries, with various colors
	for y := 0; y < m.h; y++ {
		itemString := []rune("-> " + m.choices[y] + " ---")
		for x := 0; x < m.w; x++ {
			r := '-'
			if x < len(itemString) {
				r = itemString[x]
			}
			color := m.theme.Text
			if x < 2 && y == m.y {
				color = m.theme.Arrow
			} else if y == m.y {
				color = m.theme.Highlight
			}
			c.SetCell(m.marginLeft+x, m.marginTop+y+titleHeight, r, tgl.Objects, color)
		}
	}
}

func (m *MenuWidget) SelectDraw(c *tgl.Canvas) {
	old := m.theme.Highlight
	m.theme.Highlight = m.theme.Active
	m.Draw(c)
	m.theme.Highlight = old
}

func (m *MenuWidget) Select() {
	m.selected = m.y
}

func (m *MenuWidget) Up() {
	m.oldy = m.y
	if m.y <= 0 {
		m.y = m.h - 1
	} else {
		m.y--
	}
}

func (m *MenuWidget) Down() {
	m.oldy = m.y
	m.y++
	if m.y >= m.h {
		m.y = 0
	}
}

// Select a specific index, if possible. Returns false if it was not possible.
func (m *MenuWidget) SelectIndex(n int) bool {
	if n < 0 || n >= m.h {
		return false
	}
	m.oldy = m.y
	m.y = n
	return true
}

func (m *MenuWidget) SelectFirst() bool {
	return m.SelectIndex(0)
}

func (m *MenuWidget) SelectLast() bool {
	return m.SelectIndex(m.h - 1)
}
