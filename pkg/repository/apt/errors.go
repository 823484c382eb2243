package apt

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned (wrapped in a *ParseError) when a
// sources file cannot be parsed.
var ErrMalformed = errors.New("malformed input")

type ParseError struct {
	// Line is the 1-based line number
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %s: %q", ErrMalformed, e.Line, e.Reason, e.Text)
}

func (*ParseError) Unwrap() error {
	return ErrMalformed
}
