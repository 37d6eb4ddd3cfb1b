package bitword

import (
	"errors"
	"fmt"
)

// ErrNilMatrix is returned when Encode receives a nil matrix.
var ErrNilMatrix = errors.New("matrix must not be nil")

// ErrInvalidWidth indicates a bitword width outside [MinWidth, MaxWidth].
type ErrInvalidWidth struct {
	Width int
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid bitword width %d: must be in [%d, %d]", e.Width, MinWidth, MaxWidth)
}
