package main

import (
	"fmt"
	"os"

	"github.com/xyproto/tgl"
)

// This program outputs the available palette.
// Use `./color | cat -v` to see the color codes that are used.

func main() {
	palette := []tgl.Color{
		tgl.Black, tgl.Red, tgl.Green, tgl.Yellow, tgl.Blue, tgl.Magenta, tgl.Cyan, tgl.LightGray,
		tgl.DarkGray, tgl.LightRed, tgl.LightGreen, tgl.LightYellow, tgl.LightBlue, tgl.LightMagenta, tgl.LightCyan, tgl.White,
	}
	for _, c := range palette {
		fmt.Println(c.Wrap(fmt.Sprintf("%3d ████", c)))
	}

	for _, name := range os.Args[1:] {
		if c, ok := tgl.ColorByName(name); ok {
			fmt.Println(c.Wrap(name))
		} else {
			fmt.Fprintf(os.Stderr, "unknown color: %s\n", name)
		}
	}
}
