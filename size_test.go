package tgl

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/term"
)

func TestMustTermSizeFromEnvironment(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("the size comes from the terminal, not from the environment")
	}
	t.Setenv("COLS", "")
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "30")
	w, h := MustTermSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)

	t.Setenv("COLUMNS", "0")
	t.Setenv("LINES", "0")
	w, h = MustTermSize()
	assert.Equal(t, 79, w)
	assert.Equal(t, 25, h)
}
