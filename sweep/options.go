package sweep

import (
	"log/slog"
	"runtime"
	"time"
)

type options struct {
	workers          int
	memoryLimitBytes int64
	logger           *slog.Logger
	progressInterval time.Duration
}

func defaultOptions() options {
	return options{
		workers:          runtime.GOMAXPROCS(0),
		progressInterval: time.Second,
	}
}

// Option configures a Harness.
type Option func(*options)

// WithWorkers sets the size of the worker pool processing the parameter
// cross product. Values below 1 fall back to the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithMemoryLimit bounds the total bytes held by in-flight encoded matrices.
// Runs block until the budget admits them. A non-positive limit disables
// the bound.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimitBytes = bytes
	}
}

// WithLogger sets the logger for run and progress events. nil disables
// logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithProgressInterval sets the minimum spacing between progress log records.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.progressInterval = d
		}
	}
}
