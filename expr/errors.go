package expr

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is the root of every evaluation failure; all other
// errors returned by this package match it under errors.Is.
var ErrInvalidExpression = errors.New("invalid expression")

var (
	ErrSyntax         = fmt.Errorf("%w: syntax error", ErrInvalidExpression)
	ErrUnsupported    = fmt.Errorf("%w: unsupported", ErrInvalidExpression)
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalidExpression)
	ErrOverflow       = fmt.Errorf("%w: overflow", ErrInvalidExpression)
)

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}

func overflowf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOverflow, fmt.Sprintf(format, args...))
}
