package tgl

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Color is a single SGR foreground color or attribute code, like 32 for green.
// Only the small fixed palette below is supported.
type Color uint8

const (
	// Non-color attributes
	ResetAll   Color = 0
	Bright     Color = 1
	Dim        Color = 2
	Underscore Color = 4
	Blink      Color = 5
	Reverse    Color = 7
	Hidden     Color = 8

	Black     Color = 30
	Red       Color = 31
	Green     Color = 32
	Yellow    Color = 33
	Blue      Color = 34
	Magenta   Color = 35
	Cyan      Color = 36
	LightGray Color = 37

	DarkGray     Color = 90
	LightRed     Color = 91
	LightGreen   Color = 92
	LightYellow  Color = 93
	LightBlue    Color = 94
	LightMagenta Color = 95
	LightCyan    Color = 96
	White        Color = 97

	// DefaultColor is the color of an empty cell
	DefaultColor = LightGray
)

var (
	Pink = LightMagenta
	Gray = DarkGray
)

// colorNames maps lowercase color names to Color values.
var colorNames = map[string]Color{
	"black":        Black,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"magenta":      Magenta,
	"cyan":         Cyan,
	"gray":         DarkGray,
	"white":        LightGray,
	"lightwhite":   White,
	"darkred":      Red,
	"darkgreen":    Green,
	"darkyellow":   Yellow,
	"darkblue":     Blue,
	"darkmagenta":  Magenta,
	"darkcyan":     Cyan,
	"darkgray":     DarkGray,
	"lightred":     LightRed,
	"lightgreen":   LightGreen,
	"lightyellow":  LightYellow,
	"lightblue":    LightBlue,
	"lightmagenta": LightMagenta,
	"lightcyan":    LightCyan,
	"lightgray":    LightGray,
	"pink":         Pink,
	"default":      DefaultColor,
}

// ColorByName looks up a color by name, ignoring case.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// scache caches the rendered escape sequences for Color values.
var scache sync.Map

// String returns the VT100 escape sequence for setting this color/attribute.
func (c Color) String() string {
	if cached, ok := scache.Load(c); ok {
		return cached.(string)
	}
	result := fmt.Sprintf(attributeTemplate, strconv.Itoa(int(c)))
	scache.Store(c, result)
	return result
}

// Wrap returns text wrapped with this color's escape sequence and a trailing reset.
func (c Color) Wrap(text string) string {
	return c.String() + text + NoColor
}
