package bibit

import (
	"context"

	"github.com/hupe1980/bibit/bicluster"
	"github.com/hupe1980/bibit/bitword"
	"github.com/hupe1980/bibit/matrix"
	"github.com/hupe1980/bibit/sweep"
)

// Params aliases sweep.Params so single searches and sweeps share one
// parameter type.
type Params = sweep.Params

// Ranges aliases sweep.Ranges.
type Ranges = sweep.Ranges

// Engine binds a validated binary matrix to a search/sweep configuration.
// It never mutates the matrix, so one Engine is safe for concurrent use.
type Engine struct {
	m       *matrix.BinaryMatrix
	logger  *Logger
	options options
}

// New creates an Engine over m.
func New(m *matrix.BinaryMatrix, optFns ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &Engine{
		m:       m,
		logger:  o.logger,
		options: o,
	}, nil
}

// Matrix returns the engine's input matrix.
func (e *Engine) Matrix() *matrix.BinaryMatrix { return e.m }

// Search runs one (bwl, mnr, mnc) configuration: it encodes the matrix at
// p.Width and executes the pairwise pattern search with p's thresholds.
func (e *Engine) Search(ctx context.Context, p Params) ([]*bicluster.Bicluster, error) {
	enc, err := bitword.Encode(e.m, p.Width)
	if err != nil {
		e.logger.LogSearch(ctx, p, 0, err)
		return nil, err
	}

	found, err := bicluster.Search(ctx, enc, p.MinRows, p.MinCols)
	e.logger.LogSearch(ctx, p, len(found), err)
	if err != nil {
		return nil, err
	}

	return found, nil
}

// Sweep runs the full cross product of ranges on a worker pool and returns
// per-run bicluster lists and statistics.
func (e *Engine) Sweep(ctx context.Context, ranges Ranges) (*sweep.Result, error) {
	return e.harness().Run(ctx, e.m, ranges)
}

// SweepDefaults runs Sweep with the conventional ranges for the matrix's
// column count: bwl 2..ceil(log2(cols)), mnr and mnc 2..10.
func (e *Engine) SweepDefaults(ctx context.Context) (*sweep.Result, error) {
	return e.Sweep(ctx, sweep.DefaultRanges(e.m.Cols()))
}

// Estimate reports the cost drivers of a sweep (runs, row pairs, peak
// encoded size) without executing it.
func (e *Engine) Estimate(ranges Ranges) (sweep.Estimate, error) {
	return sweep.EstimateCost(e.m, ranges)
}

func (e *Engine) harness() *sweep.Harness {
	opts := []sweep.Option{
		sweep.WithWorkers(e.options.workers),
		sweep.WithMemoryLimit(e.options.memoryLimitBytes),
		sweep.WithProgressInterval(e.options.progressInterval),
	}
	if e.logger != nil {
		opts = append(opts, sweep.WithLogger(e.logger.Logger))
	}
	return sweep.New(opts...)
}
