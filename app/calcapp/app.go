// Package calcapp is the calculator screen: a display panel over a
// 4x4 button grid, driving the calc engine one symbol at a time.
package calcapp

import (
	"image/color"
	"strings"

	"gadgets/calc"
	"gadgets/ui"

	"tinygo.org/x/tinyfont/freesans"
)

// Logical window size.
const (
	Width  = 240
	Height = 284
)

const (
	margin = 12
	gap    = 6
	panelH = 48
	btnH   = 44

	displayAscent = 17 // freesans 12pt
	buttonAscent  = 13 // freesans 9pt
)

// rows lays out the grid; each entry is the symbolic input the button
// feeds to the engine.
var rows = [4][4]rune{
	{'7', '8', '9', '÷'},
	{'4', '5', '6', '×'},
	{'1', '2', '3', '-'},
	{'0', 'C', '=', '+'},
}

type button struct {
	ui.Button
	input rune
}

type App struct {
	eng   *calc.Engine
	btns  []button
	style ui.ButtonStyle
}

func New() *App {
	a := &App{
		eng: calc.NewEngine(),
		style: ui.ButtonStyle{
			Font:   &freesans.Regular9pt7b,
			Ascent: buttonAscent,
			Text:   color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
			Fill:   color.RGBA{R: 0x2A, G: 0x2A, B: 0x32, A: 0xFF},
			Frame:  color.RGBA{R: 0x55, G: 0x55, B: 0x60, A: 0xFF},
		},
	}

	bw := (Width - 2*margin - 3*gap) / 4
	top := margin + panelH + margin
	for ri, row := range rows {
		for ci, in := range row {
			a.btns = append(a.btns, button{
				Button: ui.Button{
					X:     margin + ci*(bw+gap),
					Y:     top + ri*(btnH+gap),
					W:     bw,
					H:     btnH,
					Label: asciiOps(string(in)),
				},
				input: in,
			})
		}
	}
	return a
}

// Engine exposes the underlying engine state. Used by tests.
func (a *App) Engine() *calc.Engine { return a.eng }

// Press feeds one symbolic input (digit, operator glyph, 'C' or '=')
// to the engine.
func (a *App) Press(in rune) {
	switch {
	case in >= '0' && in <= '9':
		a.eng.AppendDigit(in)
	case in == '+' || in == '-' || in == '×' || in == '÷':
		a.eng.AppendOperator(in)
	case in == 'C':
		a.eng.Clear()
	case in == '=':
		a.eng.Evaluate()
	}
}

func (a *App) HandleKey(ev ui.KeyEvent) {
	switch ev.Code {
	case ui.KeyEnter:
		a.Press('=')
		return
	case ui.KeyEscape, ui.KeyBackspace:
		a.Press('C')
		return
	}

	switch r := ev.Rune; {
	case r >= '0' && r <= '9':
		a.Press(r)
	case r == '+' || r == '-' || r == '=':
		a.Press(r)
	case r == '*' || r == 'x':
		a.Press('×')
	case r == '/':
		a.Press('÷')
	case r == 'c' || r == 'C':
		a.Press('C')
	}
}

func (a *App) HandleClick(ev ui.ClickEvent) {
	for _, b := range a.btns {
		if b.Contains(ev.X, ev.Y) {
			a.Press(b.input)
			return
		}
	}
}

// Done is always false; the calculator quits via the window chrome.
func (a *App) Done() bool { return false }

func (a *App) Render(fb *ui.Framebuffer) {
	fb.ClearRGB(0x18, 0x18, 0x1E)

	fb.FillRect(margin, margin, Width-2*margin, panelH, color.RGBA{R: 0x0A, G: 0x0A, B: 0x0E, A: 0xFF})
	fb.StrokeRect(margin, margin, Width-2*margin, panelH, a.style.Frame)

	font := &freesans.Regular12pt7b
	text := asciiOps(a.eng.Display())
	tw := ui.TextWidth(font, text)
	x := Width - margin - 8 - tw
	if x < margin+8 {
		x = margin + 8
	}
	baseline := margin + (panelH+displayAscent)/2
	fb.DrawText(x, baseline, font, text, a.style.Text)

	for _, b := range a.btns {
		b.Draw(fb, a.style)
	}
}

// asciiOps substitutes the multiply and divide glyphs for rendering;
// the 7-bit tinyfont faces only cover ASCII.
func asciiOps(s string) string {
	return strings.NewReplacer("×", "x", "÷", "/").Replace(s)
}
