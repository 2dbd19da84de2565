package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xyproto/tgl"
)

func main() {
	game, err := tgl.NewScene(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w, h := game.Size()
	x, y := w/2-7, h/2

	update := func() {
		game.ClearLayer(tgl.Objects)

		game.WriteText(x, y, "Hello, World!", tgl.Objects, tgl.Green)
		game.WriteText(x, y+1, "Use arrow keys to move", tgl.Objects, tgl.Blue)

		w, h := game.Size()
		switch game.Poll() {
		case "q":
			game.Stop("")
		case tgl.KeyLeft:
			x = max(0, x-1)
		case tgl.KeyRight:
			x = min(w-1, x+1)
		case tgl.KeyUp:
			y = max(0, y-1)
		case tgl.KeyDown:
			y = min(h-1, y+1)
		}
	}

	if err := game.Run(context.Background(), update); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
