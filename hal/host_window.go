//go:build !tinygo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// Scale multiplies the framebuffer size to get the initial window size.
	Scale int
}

// RunWindow opens a desktop window that displays the framebuffer and
// forwards keyboard and mouse input. newApp is called once with the HAL and
// returns the per-frame step function. The window starts with cfg.Title and
// follows any title the app sets through Titler. RunWindow blocks until the
// window closes; closing the window is not an error.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	h := newHostHAL(cfg.Width, cfg.Height)
	h.title = cfg.Title
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, title: h.title}
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	title string

	rgba     []byte
	fbImg    *ebiten.Image
	uploaded uint64
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	if g.h.title != g.title {
		g.title = g.h.title
		ebiten.SetWindowTitle(g.title)
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.rgba = make([]byte, fb.width*fb.height*4)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.uploaded = fb.presented - 1
	}
	if g.uploaded != fb.presented {
		fb.toRGBA(g.rgba)
		g.fbImg.WritePixels(g.rgba)
		g.uploaded = fb.presented
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
