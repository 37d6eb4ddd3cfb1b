package bibit

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bibit/bitword"
	"github.com/hupe1980/bibit/matrix"
	"github.com/hupe1980/bibit/sweep"
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

func TestNew_NilMatrix(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilMatrix)
}

func TestEngine_Search(t *testing.T) {
	engine, err := New(referenceMatrix(t))
	require.NoError(t, err)

	found, err := engine.Search(context.Background(), Params{Width: 4, MinRows: 2, MinCols: 2})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, []uint32{0, 1, 2}, found[0].Rows.ToArray())
	require.Equal(t, []uint32{0, 1}, found[0].Cols.ToArray())
}

func TestEngine_Search_InvalidWidth(t *testing.T) {
	engine, err := New(referenceMatrix(t))
	require.NoError(t, err)

	_, err = engine.Search(context.Background(), Params{Width: 1, MinRows: 2, MinCols: 2})
	var iw *bitword.ErrInvalidWidth
	require.ErrorAs(t, err, &iw)
}

func TestEngine_Sweep(t *testing.T) {
	engine, err := New(referenceMatrix(t),
		WithMaxWorkers(2),
		WithLogger(NewTextLogger(slog.LevelError)),
	)
	require.NoError(t, err)

	result, err := engine.Sweep(context.Background(), Ranges{
		Widths:  sweep.Span(2, 4),
		MinRows: []int{2, 3},
		MinCols: []int{2},
	})
	require.NoError(t, err)
	require.Len(t, result.Runs, 6)

	for _, run := range result.Runs {
		require.Equal(t, 1, run.Stats.Biclusters, "params %+v", run.Params)
	}
}

func TestEngine_SweepDefaults(t *testing.T) {
	engine, err := New(referenceMatrix(t))
	require.NoError(t, err)

	// cols=4: widths 2..2, thresholds 2..10 each.
	result, err := engine.SweepDefaults(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Runs, 1*9*9)
}

func TestEngine_Estimate(t *testing.T) {
	engine, err := New(referenceMatrix(t))
	require.NoError(t, err)

	est, err := engine.Estimate(sweep.DefaultRanges(4))
	require.NoError(t, err)
	require.Equal(t, 4, est.Rows)
	require.Equal(t, uint64(6), est.RowPairs)
	require.Equal(t, 81, est.Runs)
}
