package calculator

import "calculator/ui"

// Title is the window title.
const Title = "Calculator"

const (
	margin        = 8
	displayHeight = 56
	keypadRows    = 5
	keypadCols    = 4
	keypadGap     = 6
)

type key struct {
	id      ButtonID
	caption string
	row     int
	col     int
	rowSpan int
	colSpan int
}

var keypad = []key{
	{id: ButtonClear, caption: "C", row: 0, col: 0},
	{id: ButtonDelete, caption: "DEL", row: 0, col: 1},
	{id: ButtonDiv, caption: "/", row: 0, col: 2},
	{id: ButtonMul, caption: "*", row: 0, col: 3},

	{id: Button7, caption: "7", row: 1, col: 0},
	{id: Button8, caption: "8", row: 1, col: 1},
	{id: Button9, caption: "9", row: 1, col: 2},
	{id: ButtonSub, caption: "-", row: 1, col: 3},

	{id: Button4, caption: "4", row: 2, col: 0},
	{id: Button5, caption: "5", row: 2, col: 1},
	{id: Button6, caption: "6", row: 2, col: 2},
	{id: ButtonAdd, caption: "+", row: 2, col: 3},

	{id: Button1, caption: "1", row: 3, col: 0},
	{id: Button2, caption: "2", row: 3, col: 1},
	{id: Button3, caption: "3", row: 3, col: 2},
	{id: ButtonEqual, caption: "=", row: 3, col: 3, rowSpan: 2},

	{id: Button0, caption: "0", row: 4, col: 0, colSpan: 2},
	{id: ButtonPoint, caption: ".", row: 4, col: 2},
}

// Window is the calculator window: a display label above the keypad.
type Window struct {
	*ui.Window

	Calc    *Calculator
	Display *ui.Label
	buttons map[ButtonID]*ui.Button
}

// NewWindow lays out a width x height calculator window and registers every
// button's click handler.
func NewWindow(width, height int, opts ...Option) *Window {
	win := ui.NewWindow(Title, width, height)
	display := win.NewLabel(ui.Rect{X: margin, Y: margin, W: width - 2*margin, H: displayHeight})

	w := &Window{
		Window:  win,
		Calc:    New(display, opts...),
		Display: display,
		buttons: make(map[ButtonID]*ui.Button, len(keypad)),
	}

	top := 2*margin + displayHeight
	grid := ui.Grid{
		Area: ui.Rect{X: margin - keypadGap, Y: top - keypadGap, W: width - 2*margin + 2*keypadGap, H: height - top - margin + 2*keypadGap},
		Rows: keypadRows,
		Cols: keypadCols,
		Gap:  keypadGap,
	}
	for _, k := range keypad {
		btn := win.NewButton(k.caption, grid.Cell(k.row, k.col, k.rowSpan, k.colSpan))
		btn.OnClick(w.Calc.handler(k.id))
		w.buttons[k.id] = btn
	}
	return w
}

// Button returns the widget for id, or nil.
func (w *Window) Button(id ButtonID) *ui.Button {
	return w.buttons[id]
}
