//go:build !windows && !plan9

package tgl

import (
	"os"
	"os/signal"
	"syscall"
)

// SetupResizeHandler makes sigChan receive a signal whenever the terminal is resized
func SetupResizeHandler(sigChan chan os.Signal) {
	signal.Notify(sigChan, syscall.SIGWINCH)
}

// interruptSignals stop a running Scene
var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
