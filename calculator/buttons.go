package calculator

import "calculator/hal"

// ButtonID names one calculator button.
type ButtonID uint8

const (
	Button0 ButtonID = iota
	Button1
	Button2
	Button3
	Button4
	Button5
	Button6
	Button7
	Button8
	Button9
	ButtonPoint
	ButtonAdd
	ButtonSub
	ButtonMul
	ButtonDiv
	ButtonEqual
	ButtonClear
	ButtonDelete
)

// appendChars binds every character button to the text it appends.
var appendChars = map[ButtonID]string{
	Button0:     "0",
	Button1:     "1",
	Button2:     "2",
	Button3:     "3",
	Button4:     "4",
	Button5:     "5",
	Button6:     "6",
	Button7:     "7",
	Button8:     "8",
	Button9:     "9",
	ButtonPoint: ".",
	ButtonAdd:   "+",
	ButtonSub:   "-",
	ButtonMul:   "*",
	ButtonDiv:   "/",
}

// Press performs the action of button id. Unknown ids are ignored.
func (c *Calculator) Press(id ButtonID) {
	if s, ok := appendChars[id]; ok {
		c.Append(s)
		return
	}
	switch id {
	case ButtonEqual:
		c.Equal()
	case ButtonClear:
		c.Clear()
	case ButtonDelete:
		c.Delete()
	}
}

// handler returns the click callback for id.
func (c *Calculator) handler(id ButtonID) func() {
	return func() { c.Press(id) }
}

var runeButtons = map[rune]ButtonID{
	'0': Button0,
	'1': Button1,
	'2': Button2,
	'3': Button3,
	'4': Button4,
	'5': Button5,
	'6': Button6,
	'7': Button7,
	'8': Button8,
	'9': Button9,
	'.': ButtonPoint,
	',': ButtonPoint,
	'+': ButtonAdd,
	'-': ButtonSub,
	'*': ButtonMul,
	'x': ButtonMul,
	'/': ButtonDiv,
	'=': ButtonEqual,
	'c': ButtonClear,
	'C': ButtonClear,
}

var codeButtons = map[hal.KeyCode]ButtonID{
	hal.KeyEnter:     ButtonEqual,
	hal.KeyEscape:    ButtonClear,
	hal.KeyBackspace: ButtonDelete,
	hal.KeyDelete:    ButtonDelete,
}

// KeyButton maps a key event onto the button it stands for.
func KeyButton(ev hal.KeyEvent) (ButtonID, bool) {
	if ev.Code != hal.KeyUnknown {
		id, ok := codeButtons[ev.Code]
		return id, ok
	}
	id, ok := runeButtons[ev.Rune]
	return id, ok
}

// HandleKey presses the button bound to ev. It reports whether ev was
// bound.
func (c *Calculator) HandleKey(ev hal.KeyEvent) bool {
	id, ok := KeyButton(ev)
	if ok {
		c.Press(id)
	}
	return ok
}
