// Package ui is a tiny retained widget set drawn into a hal.Framebuffer:
// a titled window, single-line labels and push buttons laid out on a grid.
package ui

// Rect is an axis-aligned rectangle in framebuffer pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Grid splits Area into Rows x Cols equal cells separated by Gap pixels.
type Grid struct {
	Area Rect
	Rows int
	Cols int
	Gap  int
}

// Cell returns the bounds of the cell at (row, col) spanning rowSpan rows
// and colSpan columns.
func (g Grid) Cell(row, col, rowSpan, colSpan int) Rect {
	if g.Rows <= 0 || g.Cols <= 0 {
		return Rect{}
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	if colSpan < 1 {
		colSpan = 1
	}
	cw := (g.Area.W - g.Gap*(g.Cols+1)) / g.Cols
	ch := (g.Area.H - g.Gap*(g.Rows+1)) / g.Rows
	return Rect{
		X: g.Area.X + g.Gap + col*(cw+g.Gap),
		Y: g.Area.Y + g.Gap + row*(ch+g.Gap),
		W: colSpan*cw + (colSpan-1)*g.Gap,
		H: rowSpan*ch + (rowSpan-1)*g.Gap,
	}
}

// Window owns the widgets. It is not safe for concurrent use; all calls
// are expected from the host event loop.
type Window struct {
	title  string
	width  int
	height int

	labels  []*Label
	buttons []*Button

	// pressed is drawn highlighted until Release.
	pressed *Button
}

func NewWindow(title string, width, height int) *Window {
	return &Window{title: title, width: width, height: height}
}

func (w *Window) Title() string         { return w.title }
func (w *Window) SetTitle(title string) { w.title = title }
func (w *Window) Size() (int, int)      { return w.width, w.height }

// NewLabel adds an empty label.
func (w *Window) NewLabel(bounds Rect) *Label {
	l := &Label{bounds: bounds}
	w.labels = append(w.labels, l)
	return l
}

// NewButton adds a button with no click handlers.
func (w *Window) NewButton(caption string, bounds Rect) *Button {
	b := &Button{caption: caption, bounds: bounds}
	w.buttons = append(w.buttons, b)
	return b
}

// Buttons returns the buttons in creation order.
func (w *Window) Buttons() []*Button {
	return append([]*Button(nil), w.buttons...)
}

// ButtonAt returns the button under (x, y), or nil.
func (w *Window) ButtonAt(x, y int) *Button {
	for _, b := range w.buttons {
		if b.bounds.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Click fires the button under (x, y). It reports whether one was hit.
func (w *Window) Click(x, y int) bool {
	b := w.ButtonAt(x, y)
	if b == nil {
		return false
	}
	w.pressed = b
	b.Click()
	return true
}

// Pressed returns the highlighted button, or nil.
func (w *Window) Pressed() *Button { return w.pressed }

// Release clears the highlight. It reports whether a button was
// highlighted.
func (w *Window) Release() bool {
	had := w.pressed != nil
	w.pressed = nil
	return had
}

// Label is a single line of text.
type Label struct {
	bounds Rect
	text   string
}

func (l *Label) Bounds() Rect        { return l.bounds }
func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = text }

// Button runs its handlers, in registration order, when clicked.
type Button struct {
	caption  string
	bounds   Rect
	handlers []func()
}

func (b *Button) Caption() string { return b.caption }
func (b *Button) Bounds() Rect    { return b.bounds }

// OnClick registers fn. A nil fn is ignored.
func (b *Button) OnClick(fn func()) {
	if fn != nil {
		b.handlers = append(b.handlers, fn)
	}
}

func (b *Button) Click() {
	for _, fn := range b.handlers {
		fn()
	}
}
