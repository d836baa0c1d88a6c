package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// DrawText writes s with its baseline at (x, y).
func (f *Framebuffer) DrawText(x, y int, fnt tinyfont.Fonter, s string, c color.RGBA) {
	tinyfont.WriteLine(&fbDisplayer{fb: f}, fnt, int16(x), int16(y), s, c)
}

// TextWidth reports the outer box width of s in the given font.
func TextWidth(fnt tinyfont.Fonter, s string) int {
	_, outboxWidth := tinyfont.LineWidth(fnt, s)
	return int(outboxWidth)
}

// fbDisplayer adapts Framebuffer to the displayer interface tinyfont
// draws through.
type fbDisplayer struct {
	fb *Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), c)
}

func (d *fbDisplayer) Display() error { return nil }
