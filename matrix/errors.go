package matrix

import (
	"errors"
	"fmt"
)

// ErrEmptyMatrix is returned when a constructor receives zero rows or columns.
var ErrEmptyMatrix = errors.New("matrix must have at least one row and one column")

// ErrNonBinaryValue indicates a cell outside {0, 1}.
type ErrNonBinaryValue struct {
	Row   int
	Col   int
	Value int
}

func (e *ErrNonBinaryValue) Error() string {
	return fmt.Sprintf("non-binary value %d at (%d, %d)", e.Value, e.Row, e.Col)
}

// ErrRaggedRow indicates a row whose length differs from the first row.
type ErrRaggedRow struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRaggedRow) Error() string {
	return fmt.Sprintf("row %d has %d columns, expected %d", e.Row, e.Actual, e.Expected)
}

// ErrColumnOutOfRange indicates a bitmap row referencing a column beyond the
// declared column count.
type ErrColumnOutOfRange struct {
	Row  int
	Col  int
	Cols int
}

func (e *ErrColumnOutOfRange) Error() string {
	return fmt.Sprintf("row %d sets column %d, matrix has %d columns", e.Row, e.Col, e.Cols)
}
