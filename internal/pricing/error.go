package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrInvalidOptions = errors.New("invalid options")
)

// ValidationError names the cart line that failed validation. The engine
// stops at the first invalid line, so Line is always the earliest offender.
type ValidationError struct {
	Line int
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
