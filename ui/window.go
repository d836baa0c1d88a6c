package ui

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// App is one program's top-level screen. All three methods run on the
// game-loop goroutine, one discrete event at a time.
type App interface {
	HandleKey(ev KeyEvent)
	HandleClick(ev ClickEvent)
	Render(fb *Framebuffer)
	// Done reports that the app asked to quit (a quit button or key,
	// as opposed to the window chrome).
	Done() bool
}

// Config describes the window for Run.
type Config struct {
	Title  string
	Width  int
	Height int
	Scale  int // window pixels per framebuffer pixel
	TPS    int
}

// errQuit stops the game loop for an app-requested quit; Run swallows
// it so the process still exits zero.
var errQuit = errors.New("quit")

// Run opens a desktop window driving app and blocks until the window
// closes. A nil error is a normal close.
func Run(cfg Config, app App) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	g := &game{
		fb:  NewFramebuffer(cfg.Width, cfg.Height),
		app: app,
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

type game struct {
	fb  *Framebuffer
	app App

	img    *image.RGBA
	fbImg  *ebiten.Image
	keys   []KeyEvent
	clicks []ClickEvent
}

func (g *game) Update() error {
	g.keys = pollKeys(g.keys[:0])
	g.clicks = pollClicks(g.clicks[:0])
	for _, ev := range g.keys {
		g.app.HandleKey(ev)
	}
	for _, ev := range g.clicks {
		g.app.HandleClick(ev)
	}
	if g.app.Done() {
		return errQuit
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.Render(g.fb)

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.fb.width, g.fb.height))
		g.fbImg = ebiten.NewImage(g.fb.width, g.fb.height)
	}

	src := g.fb.buf
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.width, g.fb.height
}
