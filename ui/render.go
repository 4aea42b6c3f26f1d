package ui

import (
	"image/color"

	"calculator/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	colorBG        = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorDisplayBG = color.RGBA{R: 0xd8, G: 0xe4, B: 0xc8, A: 0xff}
	colorDisplayFG = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xff}
	colorButtonBG  = color.RGBA{R: 0x38, G: 0x3c, B: 0x44, A: 0xff}
	colorButtonFG  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorPressedBG = color.RGBA{R: 0xff, G: 0xa0, B: 0x30, A: 0xff}
	colorPressedFG = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

var (
	labelFont   tinyfont.Fonter = &freemono.Bold12pt7b
	captionFont tinyfont.Fonter = &freemono.Bold9pt7b
)

const (
	labelPad = 6
	// Distance from a glyph's baseline to the vertical centre of its cap
	// height, per font.
	labelBaseline   = 6
	captionBaseline = 5
)

// Draw repaints the whole window into fb and presents it.
func (w *Window) Draw(fb hal.Framebuffer) error {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	d := newFBDisplay(fb)
	d.FillRectangle(0, 0, int16(fb.Width()), int16(fb.Height()), colorBG)

	for _, l := range w.labels {
		drawLabel(d, l)
	}
	for _, b := range w.buttons {
		bg, fg := colorButtonBG, colorButtonFG
		if b == w.pressed {
			bg, fg = colorPressedBG, colorPressedFG
		}
		drawButton(d, b, bg, fg)
	}
	return d.Display()
}

func drawLabel(d *fbDisplay, l *Label) {
	r := l.bounds
	d.FillRectangle(int16(r.X), int16(r.Y), int16(r.W), int16(r.H), colorDisplayBG)

	s := fitTail(labelFont, l.text, r.W-2*labelPad)
	_, width := tinyfont.LineWidth(labelFont, s)
	x := r.X + r.W - labelPad - int(width)
	y := r.Y + r.H/2 + labelBaseline
	tinyfont.WriteLine(d, labelFont, int16(x), int16(y), s, colorDisplayFG)
}

func drawButton(d *fbDisplay, b *Button, bg, fg color.RGBA) {
	r := b.bounds
	d.FillRectangle(int16(r.X), int16(r.Y), int16(r.W), int16(r.H), bg)

	_, width := tinyfont.LineWidth(captionFont, b.caption)
	x := r.X + (r.W-int(width))/2
	y := r.Y + r.H/2 + captionBaseline
	tinyfont.WriteLine(d, captionFont, int16(x), int16(y), b.caption, fg)
}

// fitTail drops leading characters until s fits in max pixels, so the most
// recently typed input stays visible.
func fitTail(font tinyfont.Fonter, s string, max int) string {
	if max <= 0 {
		return ""
	}
	for s != "" {
		if _, w := tinyfont.LineWidth(font, s); int(w) <= max {
			return s
		}
		s = s[1:]
	}
	return s
}

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay adapts an RGB565 framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) {
	buf := d.fb.Buffer()
	w, h := d.fb.Width(), d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
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
