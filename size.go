package tgl

import (
	"os"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// MustTermSize returns the current terminal width and height
func MustTermSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err == nil && width > 0 && height > 0 {
			return width, height
		}
	}

	// Fallback to environment variables
	w := 79
	if cols := env.Int("COLS", 0); cols > 0 {
		w = cols
	} else if cols := env.Int("COLUMNS", 0); cols > 0 {
		w = cols
	}
	h := 25
	if lines := env.Int("LINES", 0); lines > 0 {
		h = lines
	}
	return w, h
}
