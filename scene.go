package tgl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Scene ties a Canvas, a Painter and a Decoder together and drives them
// at a fixed tick rate. The Canvas methods can be called directly on the Scene.
type Scene struct {
	*Canvas

	painter  *Painter
	decoder  *Decoder
	terminal *Terminal
	out      io.Writer
	log      *logrus.Logger

	input     io.Closer // set when the scene opened the input itself
	closeOnce sync.Once

	hideCursor bool
	title      string
	tick       time.Duration
	stopStyle  string

	stopped atomic.Bool
	stopMut sync.Mutex
	stopMsg string
}

// NewScene creates a new Scene from the given configuration.
// If cfg is nil, NewConfig() is used.
func NewScene(cfg *Config) (*Scene, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	tps := cfg.TicksPerSecond
	if tps <= 0 {
		tps = defaultTicksPerSecond
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger, _ = NewLogger("")
	}
	s := &Scene{
		Canvas:     NewCanvas(cfg.Width, cfg.Height),
		painter:    NewPainter(out),
		terminal:   NewTerminal(out),
		out:        out,
		log:        logger,
		hideCursor: cfg.HideCursor,
		title:      cfg.Title,
		tick:       time.Second / time.Duration(tps),
		stopStyle:  cfg.StopStyle,
	}
	src := cfg.Input
	if src == nil {
		tty, err := OpenTTY()
		if err != nil {
			return nil, err
		}
		src = tty
		s.input = tty
	}
	s.decoder = NewDecoder(src, cfg.Scheme, cfg.Bindings)
	s.log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"tps":    tps,
		"scheme": s.decoder.Scheme().Name,
	}).Debug("new scene")
	return s, nil
}

// Poll returns the next key, or NoKey if no key has been pressed.
// It never blocks. The terminal is in raw mode, so Ctrl-C arrives as a key
// instead of a signal. Unless Ctrl-C is bound, it stops the scene.
func (s *Scene) Poll() Key {
	k := s.decoder.Poll()
	if k == Key(string(rune(ctrlC))) && !s.Stopped() {
		s.log.Debug("ctrl-c")
		s.Stop("")
	}
	return k
}

// Bind makes fn be called when the key b is pressed, instead of Poll returning it.
func (s *Scene) Bind(b byte, fn func()) {
	s.decoder.Bind(b, fn)
}

// Painter returns the painter that is used for drawing this scene.
func (s *Scene) Painter() *Painter {
	return s.painter
}

// Repaint draws the changed cells of the scene.
func (s *Scene) Repaint() (int, error) {
	return s.painter.Repaint(s.Canvas)
}

// Stop makes Run return after the current tick. The message, if any, is
// printed when Run returns, after the terminal has been restored.
// If Stop is called before Run, Run restores the terminal and returns
// right away, and only then is the message printed.
func (s *Scene) Stop(msg string) {
	s.stopMut.Lock()
	s.stopMsg = msg
	s.stopMut.Unlock()
	s.stopped.Store(true)
}

// Stopped checks if Stop has been called.
func (s *Scene) Stopped() bool {
	return s.stopped.Load()
}

// Run calls update, repaints the scene and then waits for the next tick,
// until Stop is called, ctx is cancelled or the process is interrupted.
// The terminal is always restored before Run returns.
// A cancelled context is returned as an error, an interrupt is not.
func (s *Scene) Run(ctx context.Context, update func()) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, interruptSignals...)
	defer signal.Stop(interrupt)

	resized := make(chan os.Signal, 1)
	SetupResizeHandler(resized)
	defer signal.Stop(resized)

	s.terminal.Init(s.hideCursor, s.title)
	s.painter.Invalidate(s.Canvas)
	defer s.cleanup()

	s.log.Debug("running")

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for !s.stopped.Load() {
		if update != nil {
			update()
		}
		if _, err := s.painter.Repaint(s.Canvas); err != nil {
			s.log.WithError(err).Error("repaint failed")
			return err
		}
		if s.stopped.Load() {
			break
		}
		select {
		case <-ctx.Done():
			s.log.Debug("context done")
			return ctx.Err()
		case sig := <-interrupt:
			s.log.WithField("signal", sig.String()).Debug("interrupted")
			return nil
		case <-resized:
			s.resizeToTerminal()
		case <-ticker.C:
		}
	}
	s.log.Debug("stopped")
	return nil
}

// resizeToTerminal rebuilds the canvas if the terminal size has changed
func (s *Scene) resizeToTerminal() {
	w, h := MustTermSize()
	if cw, ch := s.Size(); cw == w && ch == h {
		return
	}
	s.Resize(w, h)
	s.terminal.Clear()
	s.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("resized")
}

// cleanup restores the terminal and prints the stop message
func (s *Scene) cleanup() {
	s.terminal.Close()
	if err := s.Close(); err != nil {
		s.log.WithError(err).Warn("could not close the input")
	}
	s.stopMut.Lock()
	msg := s.stopMsg
	s.stopMut.Unlock()
	if msg != "" {
		fmt.Fprintln(s.out, ansi.Color(msg, s.stopStyle))
	}
}

// Close restores and closes the terminal input, if the scene opened it.
// It is called automatically when Run returns.
func (s *Scene) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.input != nil {
			err = errors.Wrap(s.input.Close(), "close input")
		}
	})
	return err
}
