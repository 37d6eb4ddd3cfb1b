// Package matrix provides the immutable binary presence/absence matrix that
// feeds the bitword encoder.
//
// Rows are samples, columns are features. Upstream preparation (NA handling,
// removal of all-zero rows/columns, rare-feature filtering, binarization) is a
// separate concern; constructors here only enforce that every value is 0 or 1.
package matrix

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// BinaryMatrix is a dense, row-major 0/1 matrix.
//
// It is immutable after construction: no method mutates the backing storage,
// and the encoder and search layers only ever read from it. A single instance
// may therefore be shared across concurrent sweep runs.
type BinaryMatrix struct {
	rows int
	cols int
	data []uint8 // row-major, len == rows*cols
}

// FromInts builds a BinaryMatrix from a rows×cols slice of ints.
// Every row must have the same length and every value must be 0 or 1.
func FromInts(values [][]int) (*BinaryMatrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	rows, cols := len(values), len(values[0])
	data := make([]uint8, rows*cols)

	for i, row := range values {
		if len(row) != cols {
			return nil, &ErrRaggedRow{Row: i, Expected: cols, Actual: len(row)}
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, &ErrNonBinaryValue{Row: i, Col: j, Value: v}
			}
			data[i*cols+j] = uint8(v)
		}
	}

	return &BinaryMatrix{rows: rows, cols: cols, data: data}, nil
}

// FromStrings builds a BinaryMatrix from rows written as '0'/'1' strings,
// e.g. "1100". Handy for tests and small fixtures.
func FromStrings(rows []string) (*BinaryMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	cols := len(rows[0])
	data := make([]uint8, len(rows)*cols)

	for i, row := range rows {
		if len(row) != cols {
			return nil, &ErrRaggedRow{Row: i, Expected: cols, Actual: len(row)}
		}
		for j := 0; j < cols; j++ {
			switch row[j] {
			case '0':
			case '1':
				data[i*cols+j] = 1
			default:
				return nil, &ErrNonBinaryValue{Row: i, Col: j, Value: int(row[j])}
			}
		}
	}

	return &BinaryMatrix{rows: len(rows), cols: cols, data: data}, nil
}

// FromBitmaps builds a BinaryMatrix from one roaring bitmap per row, where a
// set bit marks a present feature. cols fixes the column count; bits at or
// beyond cols are rejected rather than silently truncated.
func FromBitmaps(cols int, rows []*roaring.Bitmap) (*BinaryMatrix, error) {
	if len(rows) == 0 || cols <= 0 {
		return nil, ErrEmptyMatrix
	}

	data := make([]uint8, len(rows)*cols)

	for i, rb := range rows {
		if rb == nil {
			continue // all-zero row
		}
		it := rb.Iterator()
		for it.HasNext() {
			j := it.Next()
			if int(j) >= cols {
				return nil, &ErrColumnOutOfRange{Row: i, Col: int(j), Cols: cols}
			}
			data[i*cols+int(j)] = 1
		}
	}

	return &BinaryMatrix{rows: len(rows), cols: cols, data: data}, nil
}

// Rows returns the number of rows (samples).
func (m *BinaryMatrix) Rows() int { return m.rows }

// Cols returns the number of columns (features).
func (m *BinaryMatrix) Cols() int { return m.cols }

// At returns the value at (i, j). Panics on out-of-range indices, matching
// slice semantics: index arithmetic errors are programmer errors.
func (m *BinaryMatrix) At(i, j int) uint8 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("matrix: index out of range")
	}
	return m.data[i*m.cols+j]
}

// Row returns a read-only view of row i. Callers must not modify it.
func (m *BinaryMatrix) Row(i int) []uint8 {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// Ones returns the total number of set cells. Useful for density reporting
// and cost estimation.
func (m *BinaryMatrix) Ones() int {
	var n int
	for _, v := range m.data {
		n += int(v)
	}
	return n
}
