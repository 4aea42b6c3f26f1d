package hal

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode identifies the non-printing keys the calculator reacts to.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
)

// KeyEvent is a key press. Printable input carries Rune with KeyUnknown.
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

// Keyboard provides key events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEvent is a primary-button click or a touch, in framebuffer
// coordinates.
type PointerEvent struct {
	X int
	Y int
}

// Pointer provides click events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices. Either device may be nil.
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL is the only contact point between the calculator and the host.
type HAL interface {
	Display() Display
	Input() Input
}

// Titler is implemented by HALs backed by a titled desktop window.
type Titler interface {
	SetTitle(title string)
}
