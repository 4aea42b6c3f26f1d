package hal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"
	"unicode"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the runner after N steps (0 = no limit).
	Ticks uint64
	// Input, when set, is decoded into key events. The runner returns once
	// it is exhausted and every event has been stepped.
	Input io.Reader
}

// RunHeadless runs the application without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	var inputDone chan struct{}
	if cfg.Input != nil {
		inputDone = make(chan struct{})
		go func() {
			defer close(inputDone)
			feedKeys(ctx, cfg.Input, h.kbd.ch)
		}()
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			exhausted := false
			if inputDone != nil {
				select {
				case <-inputDone:
					exhausted = true
				default:
				}
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
			if exhausted && len(h.kbd.ch) == 0 {
				return nil
			}
		}
	}
}

// feedKeys decodes r until EOF. Unlike window input, nothing is dropped: the
// sender blocks while the queue is full.
func feedKeys(ctx context.Context, r io.Reader, out chan<- KeyEvent) {
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if err != nil {
			return
		}
		ev, ok := DecodeKey(c)
		if !ok {
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// DecodeKey maps a terminal character onto a key event.
func DecodeKey(c rune) (KeyEvent, bool) {
	switch c {
	case '\r', '\n':
		return KeyEvent{Code: KeyEnter}, true
	case 0x08, 0x7f:
		return KeyEvent{Code: KeyBackspace}, true
	case 0x1b:
		return KeyEvent{Code: KeyEscape}, true
	}
	if !unicode.IsPrint(c) {
		return KeyEvent{}, false
	}
	return KeyEvent{Rune: c}, true
}
