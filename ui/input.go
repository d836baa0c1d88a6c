package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollKeys appends this tick's key events to dst. Printable runes come
// from the input-char queue; named keys and control shortcuts are
// sampled edge-triggered.
func pollKeys(dst []KeyEvent) []KeyEvent {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)

	if ctrl {
		emitCtrl := func(key ebiten.Key, r rune) {
			if inpututil.IsKeyJustPressed(key) {
				dst = append(dst, KeyEvent{Rune: r, Ctrl: true})
			}
		}
		emitCtrl(ebiten.KeyR, 'r')
		return dst
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		dst = append(dst, KeyEvent{Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		dst = append(dst, KeyEvent{Code: KeyEnter})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		dst = append(dst, KeyEvent{Code: KeyEscape})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		dst = append(dst, KeyEvent{Code: KeyBackspace})
	}
	return dst
}

// pollClicks appends this tick's left-button presses to dst. Cursor
// coordinates are already in framebuffer space because the game layout
// is the framebuffer size.
func pollClicks(dst []ClickEvent) []ClickEvent {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, ClickEvent{X: x, Y: y})
	}
	return dst
}
