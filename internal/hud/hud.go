// Package hud draws status text over a rendered frame.
package hud

import (
	"image/color"

	"shapes/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var font tinyfont.Fonter = &proggy.TinySZ8pt7b

const lineHeight = 10

// Draw writes lines top-down starting at (x, y) in fb's back buffer.
func Draw(fb hal.Framebuffer, x, y int, c color.RGBA, lines ...string) {
	if fb == nil || fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	d := &fbDisplayer{fb: fb}
	for i, s := range lines {
		tinyfont.WriteLine(d, font, int16(x), int16(y+(i+1)*lineHeight), s, c)
	}
}

// fbDisplayer adapts a framebuffer to drivers.Displayer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	hal.PutPixel(d.fb, int(x), int(y), c.R, c.G, c.B)
}

func (d *fbDisplayer) Display() error { return nil }
