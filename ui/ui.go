// Package ui is the small desktop toolkit shared by the gadget
// programs. Apps draw into an RGB565 framebuffer and receive discrete
// key and click events; the window loop blits the framebuffer to an
// OS window each frame.
package ui

import (
	"errors"
	"os"
	"runtime"
)

// KeyCode is a minimal key identifier for non-printable keys.
type KeyCode uint16

const (
	KeyNone KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is one key press. Printable input arrives as a Rune with
// Code KeyNone; named keys arrive as a Code with Rune 0. Ctrl is set
// for control-modified shortcuts (the Rune is the plain letter).
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Ctrl bool
}

// ClickEvent is one left-button press, in framebuffer coordinates.
type ClickEvent struct {
	X int
	Y int
}

// Available reports whether a display backend is reachable. Programs
// call this before building any interactive state so a missing display
// server fails fast with a diagnostic instead of a toolkit panic.
func Available() error {
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return errors.New("no display server (neither DISPLAY nor WAYLAND_DISPLAY is set)")
		}
	}
	return nil
}

// rgb565 packs an 8-bit RGB color into rrrrrggggggbbbbb.
func rgb565(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8(((p >> 11) & 0x1F) << 3)
	g = uint8(((p >> 5) & 0x3F) << 2)
	b = uint8((p & 0x1F) << 3)
	return r, g, b
}
