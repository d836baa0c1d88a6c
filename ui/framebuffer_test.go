package ui

import (
	"image/color"
	"testing"
)

func TestFramebuffer_ClearRGB(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride=%d len=%d; want 8 and 24", fb.StrideBytes(), len(fb.Buffer()))
	}

	fb.ClearRGB(0xFF, 0x00, 0x00)
	r, g, b := fb.PixelRGB(3, 2)
	if r != 0xF8 || g != 0 || b != 0 {
		t.Fatalf("pixel=(%#x,%#x,%#x); want RGB565-quantized red", r, g, b)
	}
}

func TestFramebuffer_FillRectClamps(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// Partially and fully out-of-bounds rects must not panic.
	fb.FillRect(-4, -4, 6, 6, white)
	fb.FillRect(100, 100, 6, 6, white)
	fb.FillRect(6, 6, 10, 10, white)

	if r, _, _ := fb.PixelRGB(1, 1); r == 0 {
		t.Fatalf("pixel (1,1) not filled by clamped rect")
	}
	if r, _, _ := fb.PixelRGB(7, 7); r == 0 {
		t.Fatalf("pixel (7,7) not filled by clamped rect")
	}
	if r, _, _ := fb.PixelRGB(4, 1); r != 0 {
		t.Fatalf("pixel (4,1) filled unexpectedly")
	}
}

func TestFramebuffer_SetPixelBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	c := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	fb.SetPixel(-1, 0, c)
	fb.SetPixel(0, -1, c)
	fb.SetPixel(2, 0, c)
	fb.SetPixel(0, 2, c)

	for _, px := range fb.Buffer() {
		if px != 0 {
			t.Fatalf("out-of-bounds SetPixel wrote to the buffer")
		}
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	tcs := []struct {
		r, g, b uint8
	}{
		{0x00, 0x00, 0x00},
		{0xF8, 0xFC, 0xF8},
		{0x08, 0x04, 0x08},
		{0xF8, 0x00, 0x00},
		{0x00, 0xFC, 0x00},
		{0x00, 0x00, 0xF8},
	}

	for _, tc := range tcs {
		r, g, b := rgb888From565(rgb565(tc.r, tc.g, tc.b))
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("round trip (%#x,%#x,%#x) -> (%#x,%#x,%#x)", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}
