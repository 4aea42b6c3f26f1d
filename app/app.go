package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"calculator/calculator"
	"calculator/hal"
	"calculator/internal/buildinfo"
)

// pressedSteps is how many steps a clicked button stays highlighted.
const pressedSteps = 6

// Config tunes the application.
type Config struct {
	Logger *slog.Logger
	// Echo, when set, receives the display text as one line after every
	// evaluation.
	Echo io.Writer
}

// App drives a calculator window from a HAL. Step must be called from a
// single goroutine.
type App struct {
	cfg Config
	log *slog.Logger

	win *calculator.Window
	fb  hal.Framebuffer

	keys   <-chan hal.KeyEvent
	clicks <-chan hal.PointerEvent

	// shown is the display text last drawn; drawn reports whether a frame
	// was ever drawn.
	shown string
	drawn bool

	// release counts steps down to clearing the button highlight.
	release int

	echoErr error
}

// New builds the calculator window on h.
func New(h hal.HAL, cfg Config) (*App, error) {
	if h == nil || h.Display() == nil {
		return nil, errors.New("app: no display")
	}
	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, errors.New("app: no framebuffer")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{
		cfg: cfg,
		log: log,
		fb:  fb,
		win: calculator.NewWindow(fb.Width(), fb.Height(), calculator.WithLogger(log)),
	}
	a.win.SetTitle(calculator.Title + " (" + buildinfo.Short() + ")")
	if t, ok := h.(hal.Titler); ok {
		t.SetTitle(a.win.Title())
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.keys = kbd.Events()
		}
		if ptr := in.Pointer(); ptr != nil {
			a.clicks = ptr.Events()
		}
	}
	if a.cfg.Echo != nil {
		a.win.Button(calculator.ButtonEqual).OnClick(a.echo)
	}
	log.Info("calculator ready", "width", fb.Width(), "height", fb.Height())
	return a, nil
}

// Title is the window title.
func (a *App) Title() string { return a.win.Title() }

// Text returns the display text.
func (a *App) Text() string { return a.win.Display.Text() }

// Step dispatches every queued input event and redraws when anything
// changed.
func (a *App) Step() error {
	pressed := false
	for {
		select {
		case ev := <-a.keys:
			if id, ok := calculator.KeyButton(ev); ok && a.press(id) {
				pressed = true
			}
			continue
		case ev := <-a.clicks:
			if a.win.Click(ev.X, ev.Y) {
				pressed = true
			}
			continue
		default:
		}
		break
	}
	released := false
	if pressed {
		a.release = pressedSteps
	} else if a.release > 0 {
		a.release--
		released = a.release == 0 && a.win.Release()
	}

	if err := a.echoErr; err != nil {
		a.echoErr = nil
		return err
	}

	if a.drawn && !pressed && !released && a.shown == a.Text() {
		return nil
	}
	if err := a.win.Draw(a.fb); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	a.shown = a.Text()
	a.drawn = true
	return nil
}

// press clicks the on-screen button for id so key presses highlight it
// like mouse clicks do.
func (a *App) press(id calculator.ButtonID) bool {
	b := a.win.Button(id)
	if b == nil {
		return false
	}
	r := b.Bounds()
	return a.win.Click(r.X+r.W/2, r.Y+r.H/2)
}

func (a *App) echo() {
	if _, err := fmt.Fprintln(a.cfg.Echo, a.Text()); err != nil && a.echoErr == nil {
		a.echoErr = fmt.Errorf("echo: %w", err)
	}
}

// Stepper adapts New to the hal runners.
func Stepper(cfg Config) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}
