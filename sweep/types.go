// Package sweep drives the encoder and the pairwise search across the full
// cross product of bitword width, minimum-row and minimum-column parameters,
// one independent run per (width, minRows, minCols) triple.
package sweep

import (
	"math/bits"
	"time"

	"github.com/hupe1980/bibit/bicluster"
	"github.com/hupe1980/bibit/codec"
)

// Params is one sweep cell: the bitword width and the two size thresholds.
type Params struct {
	Width   int `json:"bwl"`
	MinRows int `json:"mnr"`
	MinCols int `json:"mnc"`
}

// Ranges holds the ordered value sequences for the three knobs. The cross
// product is iterated width-outermost, minCols-innermost; the order only
// fixes run numbering, never results.
type Ranges struct {
	Widths  []int
	MinRows []int
	MinCols []int
}

// Span returns the inclusive integer sequence from..to. It is a convenience
// for building Ranges.
func Span(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}

// DefaultRanges returns the conventional sweep for a matrix with the given
// column count: widths from 2 to ceil(log2(cols)), thresholds from 2 to 10.
func DefaultRanges(cols int) Ranges {
	maxWidth := bits.Len(uint(cols - 1)) // ceil(log2(cols)) for cols >= 2
	if maxWidth < 2 {
		maxWidth = 2
	}
	return Ranges{
		Widths:  Span(2, maxWidth),
		MinRows: Span(2, 10),
		MinCols: Span(2, 10),
	}
}

// expand materializes the cross product in run-number order.
func (r Ranges) expand() []Params {
	out := make([]Params, 0, len(r.Widths)*len(r.MinRows)*len(r.MinCols))
	for _, w := range r.Widths {
		for _, mnr := range r.MinRows {
			for _, mnc := range r.MinCols {
				out = append(out, Params{Width: w, MinRows: mnr, MinCols: mnc})
			}
		}
	}
	return out
}

// Stats is the per-run aggregate record, one row of the tabular output
// consumed by the external statistics/plotting stage. A run with zero
// biclusters reports zero counts and coverage, not an error.
type Stats struct {
	Run         int           `json:"run"`
	Params      Params        `json:"params"`
	Biclusters  int           `json:"biclusters"`
	RowCoverage int           `json:"row_coverage"` // |union of all clustered rows|
	ColCoverage int           `json:"col_coverage"` // |union of all clustered columns|
	EncodeTime  time.Duration `json:"encode_ns"`
	SearchTime  time.Duration `json:"search_ns"`
	TotalTime   time.Duration `json:"total_ns"`
	Digest      uint64        `json:"digest"` // xxh3 over the run's canonical results
}

// RunResult pairs one parameter triple with its biclusters and statistics.
type RunResult struct {
	Params     Params
	Biclusters []*bicluster.Bicluster
	Stats      Stats
}

// Result is the full sweep outcome, runs ordered by run number regardless of
// worker scheduling.
type Result struct {
	Runs []RunResult
}

// Summaries returns serialization-friendly projections of the run's
// biclusters.
func (rr *RunResult) Summaries() []bicluster.Summary {
	out := make([]bicluster.Summary, len(rr.Biclusters))
	for i, bc := range rr.Biclusters {
		out[i] = bc.Summarize()
	}
	return out
}

// StatsTable returns the per-run statistics in run order.
func (r *Result) StatsTable() []Stats {
	out := make([]Stats, len(r.Runs))
	for i := range r.Runs {
		out[i] = r.Runs[i].Stats
	}
	return out
}

// EncodeStats serializes the statistics table, one record per run, for the
// external reporting stage. A nil codec falls back to codec.Default.
func (r *Result) EncodeStats(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(r.StatsTable())
}

// TotalBiclusters sums the bicluster counts over all runs.
func (r *Result) TotalBiclusters() int {
	var n int
	for i := range r.Runs {
		n += len(r.Runs[i].Biclusters)
	}
	return n
}
