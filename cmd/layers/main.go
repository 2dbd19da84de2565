package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xyproto/tgl"
)

// A boat on the sea. The sea is on the background layer, the islands are
// objects and the boat is an actor, so it is drawn on top of both.

func drawWorld(c *tgl.Canvas) {
	w, h := c.Size()
	c.ClearAllLayers()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetCell(x, y, '~', tgl.Background, tgl.Blue)
		}
	}
	bw, bh := c.WriteBanner(2, 1, "SEA", tgl.Objects, tgl.LightYellow, '#')
	c.ClearRect(0, bh+2, w, 1, tgl.Objects)
	c.WriteText(2, bh+2, fmt.Sprintf("an island of %dx%d cells", bw, bh), tgl.Objects, tgl.LightGreen)
}

func main() {
	scene, err := tgl.NewScene(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	drawWorld(scene.Canvas)
	w, h := scene.Size()
	boat := tgl.NewSprite(w/2, h-2, 'B', tgl.LightRed)
	boat.Draw(scene.Canvas)

	scene.Bind('q', func() { scene.Stop("Ahoy!") })
	scene.Bind('r', func() {
		drawWorld(scene.Canvas)
		boat.Draw(scene.Canvas)
	})

	update := func() {
		if nw, nh := scene.Size(); nw != w || nh != h {
			// The terminal was resized and the canvas rebuilt
			w, h = nw, nh
			drawWorld(scene.Canvas)
		}
		boat.Step(scene.Canvas, scene.Poll())
		boat.Draw(scene.Canvas)

		status := "land ahoy "
		if scene.SurroundedBy(boat.X, boat.Y, '~') {
			status = "open sea  "
		}
		scene.WriteText(0, h-1, status, tgl.Actors, tgl.White)
	}

	if err := scene.Run(context.Background(), update); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
