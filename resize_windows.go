//go:build windows || plan9

package tgl

import (
	"os"
)

// SetupResizeHandler is a no-op on this platform
func SetupResizeHandler(sigChan chan os.Signal) {
	// No SIGWINCH here
}

// interruptSignals stop a running Scene
var interruptSignals = []os.Signal{os.Interrupt}
