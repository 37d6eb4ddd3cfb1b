package bicluster

import (
	"errors"
	"fmt"
)

// ErrNilEncodedMatrix is returned when Search receives a nil encoded matrix.
var ErrNilEncodedMatrix = errors.New("encoded matrix must not be nil")

// ErrInvalidThreshold indicates a row or column threshold below MinThreshold.
type ErrInvalidThreshold struct {
	Name  string
	Value int
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid %s threshold %d: must be at least %d", e.Name, e.Value, MinThreshold)
}
