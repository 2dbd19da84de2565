//go:build !windows && !plan9

package tgl

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

// readTimeout is how long a read may wait for the rest of an extended key
var readTimeout = 100 * time.Millisecond

// TTY is a raw mode terminal that can be used as a ByteSource
type TTY struct {
	t   *term.Term
	buf [1]byte
}

// OpenTTY opens the controlling terminal in raw mode
func OpenTTY() (*TTY, error) {
	t, err := term.Open(getTTYPath(), term.RawMode, term.ReadTimeout(readTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "could not open the terminal")
	}
	return &TTY{t: t}, nil
}

// getTTYPath returns the appropriate TTY path
func getTTYPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}
	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}
	// Default to /dev/tty
	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}
	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}

// Pending checks if there are unread bytes, without blocking
func (tty *TTY) Pending() bool {
	n, err := tty.t.Available()
	return err == nil && n > 0
}

// ReadByte reads a single byte. It gives up after a short timeout.
func (tty *TTY) ReadByte() (byte, error) {
	n, err := tty.t.Read(tty.buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return tty.buf[0], nil
}

// Close will restore and close the raw terminal
func (tty *TTY) Close() error {
	if err := tty.t.Restore(); err != nil {
		tty.t.Close()
		return errors.Wrap(err, "could not restore the terminal")
	}
	return tty.t.Close()
}
