//go:build windows || plan9

package tgl

import "errors"

// TTY is not yet supported on this platform, since the github.com/pkg/term
// package is not available. Use NewDecoder with a custom ByteSource instead.
type TTY struct{}

// OpenTTY always fails on this platform
func OpenTTY() (*TTY, error) {
	return nil, errors.New("raw terminal input is not supported on this platform")
}

// Pending always returns false on this platform
func (tty *TTY) Pending() bool { return false }

// ReadByte always fails on this platform
func (tty *TTY) ReadByte() (byte, error) {
	return 0, errors.New("raw terminal input is not supported on this platform")
}

// Close does nothing on this platform
func (tty *TTY) Close() error { return nil }
