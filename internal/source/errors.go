package source

import (
	"errors"
	"fmt"
)

// ErrNotBoundary is the cause of a ReadError raised when the read position
// does not sit on the first byte of a UTF-8 sequence.
var ErrNotBoundary = errors.New("byte index is not on a character boundary")

// ReadError reports a failed character read from a Buffer.
type ReadError struct {
	Loc   Location
	Index int
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: cannot read character at byte %d: %v", e.Loc, e.Index, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
