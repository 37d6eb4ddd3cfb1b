package bibit

import "errors"

// ErrNilMatrix is returned when New receives a nil matrix.
var ErrNilMatrix = errors.New("matrix must not be nil")
