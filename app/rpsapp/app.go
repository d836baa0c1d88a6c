// Package rpsapp is the rock-paper-scissors screen: three choice
// buttons, score and result lines, and reset/quit controls.
package rpsapp

import (
	"image/color"

	"gadgets/rps"
	"gadgets/ui"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// Logical window size.
const (
	Width  = 400
	Height = 240
)

const (
	titleBaseline    = 26
	summaryBaseline  = 50
	detailBaseline   = 66
	choiceTop        = 78
	choiceH          = 36
	resultBaseline   = 148
	computerBaseline = 166
	ctrlTop          = 182
	ctrlH            = 30

	sansAscent   = 13 // freesans 9pt
	proggyAscent = 7  // proggy tiny 8pt
)

type App struct {
	game *rps.Game

	result   string
	computer string
	modal    string
	quit     bool

	choiceBtns [rps.NumChoices]ui.Button
	resetBtn   ui.Button
	quitBtn    ui.Button

	choiceStyle ui.ButtonStyle
	ctrlStyle   ui.ButtonStyle
}

// New builds the screen around game; a nil game starts a fresh one
// with the shared random source.
func New(game *rps.Game) *App {
	if game == nil {
		game = rps.NewGame(nil)
	}
	a := &App{
		game:     game,
		result:   rps.InitialResult,
		computer: rps.InitialComputer,
		choiceStyle: ui.ButtonStyle{
			Font:   &freesans.Regular9pt7b,
			Ascent: sansAscent,
			Text:   color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
			Fill:   color.RGBA{R: 0x26, G: 0x32, B: 0x42, A: 0xFF},
			Frame:  color.RGBA{R: 0x4E, G: 0x64, B: 0x80, A: 0xFF},
		},
	}
	a.ctrlStyle = a.choiceStyle
	a.ctrlStyle.Fill = color.RGBA{R: 0x32, G: 0x2A, B: 0x2A, A: 0xFF}
	a.ctrlStyle.Frame = color.RGBA{R: 0x6E, G: 0x55, B: 0x55, A: 0xFF}

	const cw, cgap = 110, 10
	x := (Width - (rps.NumChoices*cw + (rps.NumChoices-1)*cgap)) / 2
	for c := rps.Rock; c < rps.NumChoices; c++ {
		a.choiceBtns[c] = ui.Button{
			X: x + int(c)*(cw+cgap), Y: choiceTop, W: cw, H: choiceH,
			Label: c.Title(),
		}
	}

	const rw, qw, bgap = 120, 80, 10
	cx := (Width - (rw + bgap + qw)) / 2
	a.resetBtn = ui.Button{X: cx, Y: ctrlTop, W: rw, H: ctrlH, Label: "Reset Score"}
	a.quitBtn = ui.Button{X: cx + rw + bgap, Y: ctrlTop, W: qw, H: ctrlH, Label: "Quit"}
	return a
}

// Game exposes the underlying game state. Used by tests.
func (a *App) Game() *rps.Game { return a.game }

// Play runs one round. An invalid choice raises the blocking modal
// and leaves every counter untouched.
func (a *App) Play(c rps.Choice) {
	round, err := a.game.Play(c)
	if err != nil {
		a.modal = err.Error()
		return
	}
	a.result = round.Result()
	a.computer = round.ComputerLine()
}

func (a *App) resetScore() {
	a.game.Reset()
	a.result = rps.ResetResult
	a.computer = rps.InitialComputer
}

func (a *App) HandleKey(ev ui.KeyEvent) {
	if a.modal != "" {
		if ev.Code == ui.KeyEnter || ev.Code == ui.KeyEscape {
			a.modal = ""
		}
		return
	}

	if ev.Ctrl {
		if ev.Rune == 'r' {
			a.resetScore()
		}
		return
	}

	switch ev.Rune {
	case 'r', 'R':
		a.Play(rps.Rock)
	case 'p', 'P':
		a.Play(rps.Paper)
	case 's', 'S':
		a.Play(rps.Scissors)
	case 'q', 'Q':
		a.quit = true
	}
}

func (a *App) HandleClick(ev ui.ClickEvent) {
	if a.modal != "" {
		a.modal = ""
		return
	}
	for c := rps.Rock; c < rps.NumChoices; c++ {
		if a.choiceBtns[c].Contains(ev.X, ev.Y) {
			a.Play(c)
			return
		}
	}
	if a.resetBtn.Contains(ev.X, ev.Y) {
		a.resetScore()
		return
	}
	if a.quitBtn.Contains(ev.X, ev.Y) {
		a.quit = true
	}
}

func (a *App) Done() bool { return a.quit }

func (a *App) Render(fb *ui.Framebuffer) {
	fb.ClearRGB(0x14, 0x18, 0x20)

	white := color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	dim := color.RGBA{R: 0xA8, G: 0xB0, B: 0xBC, A: 0xFF}
	gold := color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}

	drawCentered(fb, titleBaseline, &freesans.Bold9pt7b, "Rock - Paper - Scissors", white)

	score := a.game.Score()
	drawCentered(fb, summaryBaseline, &freesans.Regular9pt7b, score.Summary(), white)
	drawCentered(fb, detailBaseline, &proggy.TinySZ8pt7b, score.Detail(), dim)

	for _, b := range a.choiceBtns {
		b.Draw(fb, a.choiceStyle)
	}

	drawCentered(fb, resultBaseline, &freesans.Bold9pt7b, a.result, gold)
	drawCentered(fb, computerBaseline, &proggy.TinySZ8pt7b, a.computer, dim)

	a.resetBtn.Draw(fb, a.ctrlStyle)
	a.quitBtn.Draw(fb, a.ctrlStyle)

	if a.modal != "" {
		a.renderModal(fb)
	}
}

func (a *App) renderModal(fb *ui.Framebuffer) {
	const mw, mh = 320, 76
	x := (Width - mw) / 2
	y := (Height - mh) / 2
	fb.FillRect(x, y, mw, mh, color.RGBA{R: 0x40, G: 0x16, B: 0x16, A: 0xFF})
	fb.StrokeRect(x, y, mw, mh, color.RGBA{R: 0xC0, G: 0x50, B: 0x50, A: 0xFF})

	white := color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	drawCentered(fb, y+24, &freesans.Bold9pt7b, "Invalid move", white)
	drawCentered(fb, y+44, &proggy.TinySZ8pt7b, a.modal, white)
	drawCentered(fb, y+62, &proggy.TinySZ8pt7b, "press Enter to continue", white)
}

func drawCentered(fb *ui.Framebuffer, baseline int, fnt tinyfont.Fonter, s string, c color.RGBA) {
	x := (Width - ui.TextWidth(fnt, s)) / 2
	fb.DrawText(x, baseline, fnt, s, c)
}
