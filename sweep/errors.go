package sweep

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bibit/bicluster"
	"github.com/hupe1980/bibit/bitword"
)

// ErrNilMatrix is returned when Run or EstimateCost receives a nil matrix.
var ErrNilMatrix = errors.New("matrix must not be nil")

// ErrEmptyRange indicates an empty parameter sequence.
type ErrEmptyRange struct {
	Name string
}

func (e *ErrEmptyRange) Error() string {
	return fmt.Sprintf("parameter range %q must not be empty", e.Name)
}

// validate rejects invalid ranges before any encoding or search starts, so a
// bad configuration never produces a partial sweep.
func (r Ranges) validate() error {
	if len(r.Widths) == 0 {
		return &ErrEmptyRange{Name: "bwl"}
	}
	if len(r.MinRows) == 0 {
		return &ErrEmptyRange{Name: "mnr"}
	}
	if len(r.MinCols) == 0 {
		return &ErrEmptyRange{Name: "mnc"}
	}
	for _, w := range r.Widths {
		if w < bitword.MinWidth || w > bitword.MaxWidth {
			return &bitword.ErrInvalidWidth{Width: w}
		}
	}
	for _, v := range r.MinRows {
		if v < bicluster.MinThreshold {
			return &bicluster.ErrInvalidThreshold{Name: "minRows", Value: v}
		}
	}
	for _, v := range r.MinCols {
		if v < bicluster.MinThreshold {
			return &bicluster.ErrInvalidThreshold{Name: "minCols", Value: v}
		}
	}
	return nil
}
