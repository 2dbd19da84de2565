package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xyproto/tgl"
)

func main() {
	cfg := tgl.NewConfig()
	cfg.Title = "Menu"
	cfg.StopStyle = "green+b"

	scene, err := tgl.NewScene(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	choices := []string{"New game", "Load game", "Settings", "Quit"}
	theme := NewTheme()
	w, h := scene.Size()
	menu := NewMenuWidget("Main menu", choices, theme, w, h)

	scene.Bind('q', func() { scene.Stop("") })
	scene.Bind('g', func() { menu.SelectFirst() })
	scene.Bind('G', func() { menu.SelectLast() })

	theme.Box(scene.Canvas, 0, 0, w, h)

	update := func() {
		switch scene.Poll() {
		case tgl.KeyUp, "k":
			menu.Up()
		case tgl.KeyDown, "j":
			menu.Down()
		case "\r", " ":
			menu.Select()
			menu.SelectDraw(scene.Canvas)
			scene.Stop("You chose: " + choices[menu.Selected()])
			return
		}
		menu.Draw(scene.Canvas)
	}

	if err := scene.Run(context.Background(), update); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
