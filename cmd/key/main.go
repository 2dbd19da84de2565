package main

import (
	"fmt"
	"time"

	"github.com/xyproto/tgl"
)

func main() {
	escCount := 0
	tty, err := tgl.OpenTTY()
	if err != nil {
		panic(err)
	}
	defer tty.Close()
	d := tgl.NewDecoder(tty, tgl.VTScheme, nil)
	d.Bind(' ', func() {
		fmt.Print("(space is bound)\r\n")
	})
	for {
		key := d.Poll()
		if key == tgl.NoKey {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		fmt.Printf("%s\r\n", key.Name())
		if key == "\x03" {
			fmt.Print("bye!\r\n")
			break
		}
		if key == "\x1b" {
			if escCount == 0 {
				fmt.Print("Press ESC again to exit\r\n")
			} else {
				fmt.Print("bye!\r\n")
			}
			escCount++
		}
		if escCount > 1 {
			break
		}
	}
}
