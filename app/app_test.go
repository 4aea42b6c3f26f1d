package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"calculator/calculator"
	"calculator/hal"
	"calculator/internal/buildinfo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakePointer struct{ ch chan hal.PointerEvent }

func (p fakePointer) Events() <-chan hal.PointerEvent { return p.ch }

type fakeInput struct {
	kbd fakeKeyboard
	ptr fakePointer
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }
func (in fakeInput) Pointer() hal.Pointer   { return in.ptr }

type fakeHAL struct {
	disp hal.Display
	in   fakeInput
}

func (h fakeHAL) Display() hal.Display { return h.disp }
func (h fakeHAL) Input() hal.Input     { return h.in }

func newFakeHAL() fakeHAL {
	return fakeHAL{
		disp: hal.New(hal.DefaultWidth, hal.DefaultHeight).Display(),
		in: fakeInput{
			kbd: fakeKeyboard{ch: make(chan hal.KeyEvent, 16)},
			ptr: fakePointer{ch: make(chan hal.PointerEvent, 16)},
		},
	}
}

func typeKeys(h fakeHAL, s string) {
	for _, r := range s {
		ev, ok := hal.DecodeKey(r)
		if ok {
			h.in.kbd.ch <- ev
		}
	}
}

func TestStep_Keyboard(t *testing.T) {
	h := newFakeHAL()
	var echo bytes.Buffer
	a, err := New(h, Config{Echo: &echo})
	require.NoError(t, err)

	typeKeys(h, "2+3\n")
	require.NoError(t, a.Step())
	assert.Equal(t, "5", a.Text())

	typeKeys(h, "/0=")
	require.NoError(t, a.Step())
	assert.Equal(t, calculator.ErrorText, a.Text())

	typeKeys(h, "4")
	require.NoError(t, a.Step())
	assert.Equal(t, "4", a.Text())

	assert.Equal(t, "5\nWrong Input\n", echo.String())
}

func TestStep_Pointer(t *testing.T) {
	h := newFakeHAL()
	var echo bytes.Buffer
	a, err := New(h, Config{Echo: &echo})
	require.NoError(t, err)

	for _, id := range []calculator.ButtonID{calculator.Button6, calculator.ButtonMul, calculator.Button7, calculator.ButtonEqual} {
		r := a.win.Button(id).Bounds()
		h.in.ptr.ch <- hal.PointerEvent{X: r.X + 1, Y: r.Y + 1}
	}
	// A click outside every button is ignored.
	h.in.ptr.ch <- hal.PointerEvent{X: 0, Y: 0}

	require.NoError(t, a.Step())
	assert.Equal(t, "42", a.Text())
	assert.Equal(t, "42\n", echo.String())
}

func TestStep_RedrawsOnlyOnChange(t *testing.T) {
	h := newFakeHAL()
	a, err := New(h, Config{})
	require.NoError(t, err)

	fb := h.disp.Framebuffer()
	require.NoError(t, a.Step())
	fb.ClearRGB(1, 2, 3)
	cleared := append([]byte(nil), fb.Buffer()...)

	require.NoError(t, a.Step())
	assert.Equal(t, cleared, fb.Buffer(), "idle step must not redraw")

	typeKeys(h, "1")
	require.NoError(t, a.Step())
	assert.NotEqual(t, cleared, fb.Buffer())
}

type titledHAL struct {
	fakeHAL
	title string
}

func (h *titledHAL) SetTitle(title string) { h.title = title }

func TestNew_Title(t *testing.T) {
	h := &titledHAL{fakeHAL: newFakeHAL()}
	a, err := New(h, Config{})
	require.NoError(t, err)

	want := calculator.Title + " (" + buildinfo.Short() + ")"
	assert.Equal(t, want, a.Title())
	assert.Equal(t, want, h.title)
}

func TestStep_ReleasesHighlight(t *testing.T) {
	h := newFakeHAL()
	a, err := New(h, Config{})
	require.NoError(t, err)

	typeKeys(h, "7")
	require.NoError(t, a.Step())
	assert.Same(t, a.win.Button(calculator.Button7), a.win.Pressed())

	fb := h.disp.Framebuffer()
	highlighted := append([]byte(nil), fb.Buffer()...)
	for i := 0; i < pressedSteps-1; i++ {
		require.NoError(t, a.Step())
	}
	assert.NotNil(t, a.win.Pressed())
	assert.Equal(t, highlighted, fb.Buffer())

	require.NoError(t, a.Step())
	assert.Nil(t, a.win.Pressed())
	assert.NotEqual(t, highlighted, fb.Buffer())
	assert.Equal(t, "7", a.Text())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestStep_EchoError(t *testing.T) {
	h := newFakeHAL()
	a, err := New(h, Config{Echo: failingWriter{}})
	require.NoError(t, err)

	typeKeys(h, "1=")
	assert.ErrorContains(t, a.Step(), "echo: closed")
	assert.NoError(t, a.Step())
}

func TestNew_RequiresDisplay(t *testing.T) {
	_, err := New(nil, Config{})
	assert.Error(t, err)

	_, err = New(fakeHAL{}, Config{})
	assert.Error(t, err)
}

func TestStepper_Headless(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var echo bytes.Buffer
	err := hal.RunHeadless(ctx, hal.HeadlessConfig{Hz: 1000, Input: strings.NewReader("2+3\n\x1b7/0\n4*2.5\n")}, Stepper(Config{Echo: &echo}))
	require.NoError(t, err)
	assert.Equal(t, "5\nWrong Input\n10.0\n", echo.String())
}
