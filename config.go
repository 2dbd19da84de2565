package tgl

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xyproto/env/v2"
)

const (
	defaultTitle          = "TGLib"
	defaultTicksPerSecond = 20
)

// Config holds the settings for a Scene
type Config struct {
	// Width and Height of the canvas, in cells
	Width  int
	Height int

	// HideCursor hides the terminal cursor while the scene runs
	HideCursor bool

	// Title is the window title, set when the scene starts running
	Title string

	// Bindings are copied into the scene's own binding table
	Bindings map[byte]func()

	// TicksPerSecond is how many times per second the update function is called
	TicksPerSecond int

	// Scheme is the extended key layout of the input (VTScheme if nil)
	Scheme *Scheme

	// Output is where the frames are written (os.Stdout if nil)
	Output io.Writer

	// Input is where key presses are read from. If nil, the controlling
	// terminal is opened in raw mode and closed again when the scene stops.
	Input ByteSource

	// Logger receives debug information. Never log to the same output as the frames.
	Logger *logrus.Logger

	// StopStyle is the github.com/mgutz/ansi style for the message given to Stop
	StopStyle string
}

// NewConfig returns a Config with the default settings, sized to the current terminal.
// TGL_TPS, TGL_TITLE, TGL_SCHEME and TGL_LOG can be used to override the defaults.
func NewConfig() *Config {
	w, h := MustTermSize()
	logger, err := NewLogger(env.Str("TGL_LOG"))
	if err != nil {
		// Logging is optional, carry on without it
		logger, _ = NewLogger("")
	}
	return &Config{
		Width:          w,
		Height:         h,
		HideCursor:     true,
		Title:          env.Str("TGL_TITLE", defaultTitle),
		Bindings:       make(map[byte]func()),
		TicksPerSecond: env.Int("TGL_TPS", defaultTicksPerSecond),
		Scheme:         SchemeByName(env.Str("TGL_SCHEME", VTScheme.Name)),
		Output:         os.Stdout,
		Logger:         logger,
		StopStyle:      "default",
	}
}

// NewLogger returns a debug level logger that appends to the given file.
// If filename is empty, everything that is logged is discarded.
func NewLogger(filename string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	if filename == "" {
		logger.SetOutput(io.Discard)
		return logger, nil
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, errors.Wrap(err, "could not open the log file")
	}
	logger.SetOutput(f)
	return logger, nil
}
