package main

import (
	"fmt"
	"os"

	"github.com/xyproto/tgl"
)

func main() {
	fmt.Println("Try resizing the terminal")
	w, h := tgl.MustTermSize()
	fmt.Printf("%dx%d\n", w, h)

	c := tgl.NewCanvas(w, h)
	sigChan := make(chan os.Signal, 1)
	tgl.SetupResizeHandler(sigChan)
	for range sigChan {
		c.Resize(tgl.MustTermSize())
		w, h := c.Size()
		fmt.Printf("%dx%d\n", w, h)
	}
}
