// Package calculator implements the calculator's display logic and wires it
// to a window of buttons.
package calculator

import (
	"fmt"
	"io"
	"log/slog"

	"calculator/expr"
)

// evalExpr is the evaluator behind evaluate.
var evalExpr = expr.Evaluate

// ErrorText replaces the display whenever evaluation fails.
const ErrorText = "Wrong Input"

// Display is the single-line text the calculator edits.
type Display interface {
	Text() string
	SetText(string)
}

// Calculator applies button actions to a Display. States are implicit in
// the text: empty, composing an expression, or ErrorText.
type Calculator struct {
	display Display
	log     *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger evaluation failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.log = l
		}
	}
}

func New(display Display, opts ...Option) *Calculator {
	c := &Calculator{
		display: display,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Text returns the current display text.
func (c *Calculator) Text() string { return c.display.Text() }

// Append adds s to the expression. An error marker on the display is
// discarded first.
func (c *Calculator) Append(s string) {
	text := c.display.Text()
	if text == ErrorText {
		text = ""
	}
	c.display.SetText(text + s)
}

func (c *Calculator) Clear() {
	c.display.SetText("")
}

// Delete removes the last character. The error marker is removed as a
// whole.
func (c *Calculator) Delete() {
	text := c.display.Text()
	switch {
	case text == ErrorText:
		text = ""
	case text != "":
		text = text[:len(text)-1]
	}
	c.display.SetText(text)
}

// Equal evaluates the display and replaces it with the result, or with
// ErrorText when evaluation fails for any reason.
func (c *Calculator) Equal() {
	text := c.display.Text()
	out, err := evaluate(text)
	if err != nil {
		c.log.Debug("evaluation failed", "expr", text, "err", err)
		c.display.SetText(ErrorText)
		return
	}
	c.log.Debug("evaluated", "expr", text, "result", out)
	c.display.SetText(out)
}

// evaluate is the only error boundary between the evaluator and the
// display. A panic inside the evaluator is reported as an invalid
// expression as well.
func evaluate(text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: evaluator panic: %v", expr.ErrInvalidExpression, r)
		}
	}()
	v, err := evalExpr(text)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
