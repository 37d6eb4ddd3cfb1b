package sweep

import (
	"github.com/hupe1980/bibit/matrix"
)

// Estimate exposes the cost drivers of a sweep before launching it. The
// search itself has no degraded mode, so callers bound impractical
// configurations (large row-pair counts, many runs) up front.
type Estimate struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// Runs is the size of the parameter cross product.
	Runs int `json:"runs"`

	// RowPairs is the number of unordered row pairs evaluated per run.
	RowPairs uint64 `json:"row_pairs"`

	// MaxEncodedBytes is the largest per-run encoded matrix, reached at the
	// narrowest width. Together with the worker count it bounds peak memory.
	MaxEncodedBytes int64 `json:"max_encoded_bytes"`
}

// EstimateCost computes the Estimate for m under ranges. It validates the
// ranges the same way Run does.
func EstimateCost(m *matrix.BinaryMatrix, ranges Ranges) (Estimate, error) {
	if m == nil {
		return Estimate{}, ErrNilMatrix
	}
	if err := ranges.validate(); err != nil {
		return Estimate{}, err
	}

	rows, cols := m.Rows(), m.Cols()

	var maxBytes int64
	for _, w := range ranges.Widths {
		if b := encodedBytes(rows, cols, w); b > maxBytes {
			maxBytes = b
		}
	}

	return Estimate{
		Rows:            rows,
		Cols:            cols,
		Runs:            len(ranges.Widths) * len(ranges.MinRows) * len(ranges.MinCols),
		RowPairs:        uint64(rows) * uint64(rows-1) / 2,
		MaxEncodedBytes: maxBytes,
	}, nil
}
