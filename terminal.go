package tgl

import (
	"fmt"
	"io"

	"github.com/xyproto/env/v2"
)

const (
	cursorHome         = "\033[H"
	cursorHomeTemplate = "\033[%d;%dH"
	eraseScreen        = "\033[2J"
	enableLineWrap     = "\033[?7h"
	disableLineWrap    = "\033[?7l"
	showCursor         = "\033[?25h"
	hideCursor         = "\033[?25l"
	titleTemplate      = "\033]0;%s\a"
	attributeTemplate  = "\033[%sm"
)

// NoColor is the escape sequence for resetting all terminal color attributes.
const NoColor string = "\033[0m"

// UnderTMUX reports whether the process is running inside a TMUX session.
var UnderTMUX = env.Has("TMUX")

// UnderScreen reports whether the process is running inside a GNU Screen session.
var UnderScreen = env.Has("STY")

// Terminal sends terminal control sequences to an io.Writer, typically os.Stdout.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a Terminal that writes to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Init prepares the terminal for full-screen canvas use.
func (t *Terminal) Init(hideCursor bool, title string) {
	if title != "" {
		t.SetTitle(title)
	}
	t.Clear()
	t.SetLineWrap(false)
	t.ShowCursor(!hideCursor)
}

// Close restores the terminal to a usable interactive state and clears the screen,
// so that canvas content does not bleed into the shell session after exit.
func (t *Terminal) Close() {
	fmt.Fprint(t.w, NoColor)
	t.SetLineWrap(true)
	t.ShowCursor(true)
	t.Clear()
	t.Home()
}

// SetXY moves the cursor to the given position (0,0 is top-left).
func (t *Terminal) SetXY(x, y int) {
	fmt.Fprintf(t.w, cursorHomeTemplate, y+1, x+1)
}

// Home moves the cursor to the home position (top-left corner).
func (t *Terminal) Home() {
	fmt.Fprint(t.w, cursorHome)
}

// Clear erases the entire screen.
func (t *Terminal) Clear() {
	fmt.Fprint(t.w, eraseScreen)
}

// SetLineWrap enables or disables terminal line-wrapping.
func (t *Terminal) SetLineWrap(enable bool) {
	if enable {
		fmt.Fprint(t.w, enableLineWrap)
	} else {
		fmt.Fprint(t.w, disableLineWrap)
	}
}

// ShowCursor shows or hides the terminal cursor.
func (t *Terminal) ShowCursor(enable bool) {
	if enable {
		fmt.Fprint(t.w, showCursor)
	} else {
		fmt.Fprint(t.w, hideCursor)
	}
}

// SetTitle sets the window title. Multiplexers do not pass it on, so it is skipped there.
func (t *Terminal) SetTitle(title string) {
	if UnderTMUX || UnderScreen {
		return
	}
	fmt.Fprintf(t.w, titleTemplate, title)
}
