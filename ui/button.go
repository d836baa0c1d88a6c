package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Button is a labeled rectangle in framebuffer coordinates. It holds
// no callback; input dispatch is a flat symbol-to-handler mapping in
// the app that owns it.
type Button struct {
	X     int
	Y     int
	W     int
	H     int
	Label string
}

// Contains reports whether the point lies inside the button.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// ButtonStyle carries the shared look of an app's buttons. Ascent is
// the pixel ascent of Font's digit glyphs, used to center labels.
type ButtonStyle struct {
	Font   tinyfont.Fonter
	Ascent int
	Text   color.RGBA
	Fill   color.RGBA
	Frame  color.RGBA
}

// Draw renders the button with a centered label.
func (b Button) Draw(fb *Framebuffer, st ButtonStyle) {
	fb.FillRect(b.X, b.Y, b.W, b.H, st.Fill)
	fb.StrokeRect(b.X, b.Y, b.W, b.H, st.Frame)

	tw := TextWidth(st.Font, b.Label)
	tx := b.X + (b.W-tw)/2
	ty := b.Y + (b.H+st.Ascent)/2
	fb.DrawText(tx, ty, st.Font, b.Label, st.Text)
}
