package sweep

import (
	"context"
	"encoding/binary"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/bibit/bicluster"
	"github.com/hupe1980/bibit/bitword"
	"github.com/hupe1980/bibit/internal/resource"
	"github.com/hupe1980/bibit/matrix"
)

// Harness executes sweeps over one configuration of workers, memory budget
// and logging. It is stateless across Run calls and safe for concurrent use.
type Harness struct {
	workers     int
	memLimit    int64
	logger      *slog.Logger
	progressLim *rate.Limiter
}

// New creates a Harness. With no options it uses one worker per CPU, no
// memory budget and no logging.
func New(optFns ...Option) *Harness {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return &Harness{
		workers:     o.workers,
		memLimit:    o.memoryLimitBytes,
		logger:      o.logger,
		progressLim: rate.NewLimiter(rate.Every(o.progressInterval), 1),
	}
}

// Run executes the full cross product of ranges against m. Runs are
// embarrassingly parallel: each owns its encoded matrix and bicluster list,
// and results land at their run index, so the output order is deterministic
// no matter how workers interleave. The first error (including context
// cancellation) aborts the sweep.
func (h *Harness) Run(ctx context.Context, m *matrix.BinaryMatrix, ranges Ranges) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := ranges.validate(); err != nil {
		return nil, err
	}

	params := ranges.expand()
	runs := make([]RunResult, len(params))

	ctrl := resource.NewController(h.memLimit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)

	var done atomic.Int64
	for i, p := range params {
		i, p := i, p // per-iteration copies; the toolchain predates Go 1.22 loop semantics
		g.Go(func() error {
			r, err := h.runOne(gctx, m, i, p, ctrl)
			if err != nil {
				return err
			}
			runs[i] = r
			// Throttled: a few hundred runs must not flood the log.
			if n := done.Add(1); h.logger != nil && h.progressLim.Allow() {
				h.logger.InfoContext(gctx, "sweep progress", "done", n, "total", len(params))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Runs: runs}
	if h.logger != nil {
		h.logger.InfoContext(ctx, "sweep completed", "runs", len(params), "biclusters", result.TotalBiclusters())
	}

	return result, nil
}

// runOne encodes m at p.Width and searches with p's thresholds. Encoding is
// repeated per run even though the thresholds do not affect it; that keeps
// runs fully independent for the worker pool.
func (h *Harness) runOne(ctx context.Context, m *matrix.BinaryMatrix, idx int, p Params, ctrl *resource.Controller) (RunResult, error) {
	bytes := encodedBytes(m.Rows(), m.Cols(), p.Width)
	if err := ctrl.Acquire(ctx, bytes); err != nil {
		return RunResult{}, err
	}
	defer ctrl.Release(bytes)

	start := time.Now()
	enc, err := bitword.Encode(m, p.Width)
	if err != nil {
		return RunResult{}, err
	}
	encodeTime := time.Since(start)

	searchStart := time.Now()
	found, err := bicluster.Search(ctx, enc, p.MinRows, p.MinCols)
	if err != nil {
		return RunResult{}, err
	}
	searchTime := time.Since(searchStart)

	rowCov, colCov := coverage(found)
	stats := Stats{
		Run:         idx,
		Params:      p,
		Biclusters:  len(found),
		RowCoverage: rowCov,
		ColCoverage: colCov,
		EncodeTime:  encodeTime,
		SearchTime:  searchTime,
		TotalTime:   time.Since(start),
		Digest:      digest(found),
	}

	if h.logger != nil {
		h.logger.DebugContext(ctx, "run completed",
			"run", idx,
			"bwl", p.Width,
			"mnr", p.MinRows,
			"mnc", p.MinCols,
			"biclusters", len(found),
			"search", searchTime,
		)
	}

	return RunResult{Params: p, Biclusters: found, Stats: stats}, nil
}

// coverage returns the cardinalities of the unions of all clustered row and
// column indices.
func coverage(found []*bicluster.Bicluster) (rows, cols int) {
	rowUnion, colUnion := roaring.New(), roaring.New()
	for _, bc := range found {
		rowUnion.Or(bc.Rows)
		colUnion.Or(bc.Cols)
	}
	return int(rowUnion.GetCardinality()), int(colUnion.GetCardinality())
}

// digest hashes the run's results in output order: pattern words, then row
// indices, per bicluster. Identical inputs must reproduce it exactly, which
// makes it a cheap cross-run determinism check for callers.
func digest(found []*bicluster.Bicluster) uint64 {
	h := xxh3.New()
	var buf [8]byte
	for _, bc := range found {
		for _, w := range bc.Words() {
			binary.LittleEndian.PutUint64(buf[:], w)
			_, _ = h.Write(buf[:])
		}
		for _, r := range bc.Rows.ToArray() {
			binary.LittleEndian.PutUint32(buf[:4], r)
			_, _ = h.Write(buf[:4])
		}
	}
	return h.Sum64()
}

// encodedBytes is the backing size of one encoded matrix.
func encodedBytes(rows, cols, width int) int64 {
	wordsPerRow := (cols + width - 1) / width
	return int64(rows) * int64(wordsPerRow) * 8
}
