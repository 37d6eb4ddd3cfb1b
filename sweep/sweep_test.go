package sweep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bibit/bicluster"
	"github.com/hupe1980/bibit/bitword"
	"github.com/hupe1980/bibit/codec"
	"github.com/hupe1980/bibit/internal/resource"
	"github.com/hupe1980/bibit/matrix"
	"github.com/hupe1980/bibit/testutil"
)

func referenceMatrix(t *testing.T) *matrix.BinaryMatrix {
	t.Helper()
	m, err := matrix.FromStrings([]string{
		"1100",
		"1101",
		"1110",
		"0011",
	})
	require.NoError(t, err)
	return m
}

func TestSpan(t *testing.T) {
	require.Equal(t, []int{2, 3, 4}, Span(2, 4))
	require.Equal(t, []int{5}, Span(5, 5))
	require.Nil(t, Span(3, 2))
}

func TestDefaultRanges(t *testing.T) {
	r := DefaultRanges(100) // ceil(log2(100)) = 7
	require.Equal(t, Span(2, 7), r.Widths)
	require.Equal(t, Span(2, 10), r.MinRows)
	require.Equal(t, Span(2, 10), r.MinCols)

	// Tiny matrices still get at least width 2.
	require.Equal(t, []int{2}, DefaultRanges(2).Widths)
}

func TestRanges_Expand_Order(t *testing.T) {
	r := Ranges{Widths: []int{2, 3}, MinRows: []int{2, 4}, MinCols: []int{2}}
	require.Equal(t, []Params{
		{Width: 2, MinRows: 2, MinCols: 2},
		{Width: 2, MinRows: 4, MinCols: 2},
		{Width: 3, MinRows: 2, MinCols: 2},
		{Width: 3, MinRows: 4, MinCols: 2},
	}, r.expand())
}

func TestRanges_Validate(t *testing.T) {
	tests := []struct {
		name   string
		ranges Ranges
		check  func(t *testing.T, err error)
	}{
		{
			name:   "empty widths",
			ranges: Ranges{MinRows: []int{2}, MinCols: []int{2}},
			check: func(t *testing.T, err error) {
				var er *ErrEmptyRange
				require.ErrorAs(t, err, &er)
				require.Equal(t, "bwl", er.Name)
			},
		},
		{
			name:   "empty min rows",
			ranges: Ranges{Widths: []int{2}, MinCols: []int{2}},
			check: func(t *testing.T, err error) {
				var er *ErrEmptyRange
				require.ErrorAs(t, err, &er)
				require.Equal(t, "mnr", er.Name)
			},
		},
		{
			name:   "width too small",
			ranges: Ranges{Widths: []int{1}, MinRows: []int{2}, MinCols: []int{2}},
			check: func(t *testing.T, err error) {
				var iw *bitword.ErrInvalidWidth
				require.ErrorAs(t, err, &iw)
			},
		},
		{
			name:   "non-positive threshold",
			ranges: Ranges{Widths: []int{2}, MinRows: []int{0}, MinCols: []int{2}},
			check: func(t *testing.T, err error) {
				var it *bicluster.ErrInvalidThreshold
				require.ErrorAs(t, err, &it)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ranges.validate()
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestHarness_Run_ReferenceMatrix(t *testing.T) {
	m := referenceMatrix(t)

	h := New(WithWorkers(2))
	result, err := h.Run(context.Background(), m, Ranges{
		Widths:  []int{2, 3, 4},
		MinRows: []int{2},
		MinCols: []int{2},
	})
	require.NoError(t, err)
	require.Len(t, result.Runs, 3)

	// Every width finds the same single bicluster: rows {0,1,2} × cols {0,1}.
	for i, run := range result.Runs {
		require.Equal(t, i, run.Stats.Run)
		require.Len(t, run.Biclusters, 1, "width %d", run.Params.Width)
		require.Equal(t, 1, run.Stats.Biclusters)
		require.Equal(t, 3, run.Stats.RowCoverage)
		require.Equal(t, 2, run.Stats.ColCoverage)
		require.Equal(t, []uint32{0, 1, 2}, run.Biclusters[0].Rows.ToArray())
		require.Equal(t, []uint32{0, 1}, run.Biclusters[0].Cols.ToArray())
	}

	require.Equal(t, 3, result.TotalBiclusters())
}

func TestHarness_Run_NumberingMatchesCrossProduct(t *testing.T) {
	rng := testutil.NewRNG(5)
	m := rng.BinaryMatrix(16, 12, 0.4)

	ranges := Ranges{Widths: []int{2, 4}, MinRows: []int{2, 3}, MinCols: []int{2, 3}}
	h := New(WithWorkers(4))

	result, err := h.Run(context.Background(), m, ranges)
	require.NoError(t, err)
	require.Len(t, result.Runs, 8)

	want := ranges.expand()
	for i, run := range result.Runs {
		require.Equal(t, want[i], run.Params, "run %d", i)
		require.Equal(t, i, run.Stats.Run)
	}
}

func TestHarness_Run_ZeroBiclustersIsNotAnError(t *testing.T) {
	m := referenceMatrix(t)

	h := New()
	result, err := h.Run(context.Background(), m, Ranges{
		Widths:  []int{2},
		MinRows: []int{2},
		MinCols: []int{5}, // larger than the column count
	})
	require.NoError(t, err)
	require.Len(t, result.Runs, 1)

	stats := result.Runs[0].Stats
	require.Zero(t, stats.Biclusters)
	require.Zero(t, stats.RowCoverage)
	require.Zero(t, stats.ColCoverage)
	require.Empty(t, result.Runs[0].Biclusters)
	require.NotZero(t, stats.TotalTime)
}

func TestHarness_Run_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(13)
	m := rng.BinaryMatrix(20, 16, 0.45)

	ranges := Ranges{Widths: Span(2, 4), MinRows: Span(2, 4), MinCols: Span(2, 4)}

	first, err := New(WithWorkers(1)).Run(context.Background(), m, ranges)
	require.NoError(t, err)
	second, err := New(WithWorkers(8)).Run(context.Background(), m, ranges)
	require.NoError(t, err)

	require.Equal(t, len(first.Runs), len(second.Runs))
	for i := range first.Runs {
		require.Equal(t, first.Runs[i].Stats.Digest, second.Runs[i].Stats.Digest,
			"run %d must not depend on worker interleaving", i)
		require.Equal(t, first.Runs[i].Stats.Biclusters, second.Runs[i].Stats.Biclusters)
	}
}

func TestHarness_Run_Cancellation(t *testing.T) {
	rng := testutil.NewRNG(17)
	m := rng.BinaryMatrix(20, 16, 0.4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, m, Ranges{Widths: []int{2}, MinRows: []int{2}, MinCols: []int{2}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestHarness_Run_MemoryLimitTooSmall(t *testing.T) {
	m := referenceMatrix(t) // 4×4, width 2 encodes to 64 bytes

	h := New(WithMemoryLimit(8))
	_, err := h.Run(context.Background(), m, Ranges{
		Widths:  []int{2},
		MinRows: []int{2},
		MinCols: []int{2},
	})
	require.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
}

func TestHarness_Run_MemoryLimitSerializesRuns(t *testing.T) {
	m := referenceMatrix(t)

	// Budget admits exactly one width-2 encoding (64 bytes) at a time.
	h := New(WithWorkers(4), WithMemoryLimit(64))
	result, err := h.Run(context.Background(), m, Ranges{
		Widths:  []int{2},
		MinRows: []int{2, 3},
		MinCols: []int{2},
	})
	require.NoError(t, err)
	require.Len(t, result.Runs, 2)
}

func TestHarness_Run_InvalidInput(t *testing.T) {
	_, err := New().Run(context.Background(), nil, DefaultRanges(4))
	require.ErrorIs(t, err, ErrNilMatrix)
}

func TestEstimateCost(t *testing.T) {
	rng := testutil.NewRNG(2)
	m := rng.BinaryMatrix(10, 12, 0.5)

	est, err := EstimateCost(m, Ranges{Widths: []int{2, 6}, MinRows: Span(2, 3), MinCols: Span(2, 4)})
	require.NoError(t, err)
	require.Equal(t, 10, est.Rows)
	require.Equal(t, 12, est.Cols)
	require.Equal(t, 2*2*3, est.Runs)
	require.Equal(t, uint64(45), est.RowPairs)
	// Width 2 dominates: ceil(12/2)=6 words per row, 10 rows, 8 bytes each.
	require.Equal(t, int64(480), est.MaxEncodedBytes)

	_, err = EstimateCost(nil, DefaultRanges(4))
	require.ErrorIs(t, err, ErrNilMatrix)

	_, err = EstimateCost(m, Ranges{})
	var er *ErrEmptyRange
	require.ErrorAs(t, err, &er)
}

func TestResult_EncodeStats(t *testing.T) {
	m := referenceMatrix(t)

	result, err := New().Run(context.Background(), m, Ranges{
		Widths:  []int{2},
		MinRows: []int{2},
		MinCols: []int{2},
	})
	require.NoError(t, err)

	data, err := result.EncodeStats(nil)
	require.NoError(t, err)

	var got []Stats
	require.NoError(t, codec.Default.Unmarshal(data, &got))
	require.Equal(t, result.StatsTable(), got)

	require.Equal(t, []bicluster.Summary{
		{Rows: []uint32{0, 1, 2}, Cols: []uint32{0, 1}, Pattern: "1100"},
	}, result.Runs[0].Summaries())
}

func TestStatsTable(t *testing.T) {
	m := referenceMatrix(t)

	result, err := New().Run(context.Background(), m, Ranges{
		Widths:  []int{2, 4},
		MinRows: []int{2},
		MinCols: []int{2},
	})
	require.NoError(t, err)

	table := result.StatsTable()
	require.Len(t, table, 2)
	for i, s := range table {
		require.Equal(t, i, s.Run)
		require.GreaterOrEqual(t, s.TotalTime, s.EncodeTime+s.SearchTime-time.Millisecond)
	}
}
