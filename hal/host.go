package hal

const (
	// DefaultWidth and DefaultHeight are the framebuffer size in pixels.
	DefaultWidth  = 240
	DefaultHeight = 320

	eventQueueLen = 64
)

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer

	title string
}

// New returns a host HAL with a width x height framebuffer. Non-positive
// sizes fall back to the defaults.
func New(width, height int) HAL {
	return newHostHAL(width, height)
}

func newHostHAL(width, height int) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		kbd: &hostKeyboard{ch: make(chan KeyEvent, eventQueueLen)},
		ptr: &hostPointer{ch: make(chan PointerEvent, eventQueueLen)},
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

// SetTitle sets the window title; the window runner picks it up on its next
// frame.
func (h *hostHAL) SetTitle(title string) { h.title = title }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostKeyboard struct {
	ch chan KeyEvent
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit drops the event when the queue is full.
func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}
