// Package term renders the frame buffer as text, for headless runs.
package term

import (
	"bufio"
	"io"

	"chyp8/emu/cpu"
)

// Display writes each rendered frame to W, one line per pixel row.
type Display struct {
	W   io.Writer
	On  byte
	Off byte
}

func New(w io.Writer) *Display {
	return &Display{W: w, On: '#', Off: '.'}
}

func (d *Display) Render(frame *[cpu.DisplaySize]uint32) error {
	bw := bufio.NewWriter(d.W)
	for y := 0; y < cpu.DisplayHeight; y++ {
		for x := 0; x < cpu.DisplayWidth; x++ {
			c := d.Off
			if frame[y*cpu.DisplayWidth+x] == cpu.PixelOn {
				c = d.On
			}
			bw.WriteByte(c)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
