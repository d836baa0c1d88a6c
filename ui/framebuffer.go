package ui

import "image/color"

// Framebuffer is a 16bpp RGB565 pixel buffer. Apps own the drawing;
// the window loop converts it to RGBA and puts it on screen.
type Framebuffer struct {
	width  int
	height int
	stride int
	buf    []byte
}

func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 2
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Framebuffer) Width() int       { return f.width }
func (f *Framebuffer) Height() int      { return f.height }
func (f *Framebuffer) StrideBytes() int { return f.stride }
func (f *Framebuffer) Buffer() []byte   { return f.buf }

// ClearRGB fills the whole buffer with one color.
func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// SetPixel writes one pixel. Out-of-bounds coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

// FillRect fills the rectangle clamped to the buffer bounds.
func (f *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) {
	x0 := clampInt(x, 0, f.width)
	y0 := clampInt(y, 0, f.height)
	x1 := clampInt(x+w, 0, f.width)
	y1 := clampInt(y+h, 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := rgb565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
}

// StrokeRect draws a one-pixel rectangle outline.
func (f *Framebuffer) StrokeRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	f.FillRect(x, y, w, 1, c)
	f.FillRect(x, y+h-1, w, 1, c)
	f.FillRect(x, y, 1, h, c)
	f.FillRect(x+w-1, y, 1, h, c)
}

// PixelRGB reports the color stored at x, y. Used by tests.
func (f *Framebuffer) PixelRGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0
	}
	off := y*f.stride + x*2
	p := uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
	return rgb888From565(p)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
