package bibit

import (
	"runtime"
	"time"
)

type options struct {
	workers          int
	memoryLimitBytes int64
	progressInterval time.Duration
	logger           *Logger
}

func defaultOptions() options {
	return options{
		workers:          runtime.GOMAXPROCS(0),
		progressInterval: time.Second,
	}
}

// Option configures an Engine.
type Option func(*options)

// WithMaxWorkers sets the sweep worker pool size. Values below 1 fall back
// to one worker per CPU.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithMemoryLimit bounds the bytes held by in-flight encoded matrices during
// a sweep. Runs wait for budget instead of failing; a single run larger than
// the whole budget fails fast.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimitBytes = bytes
	}
}

// WithProgressInterval sets the minimum spacing between sweep progress log
// records.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.progressInterval = d
		}
	}
}

// WithLogger sets the logger for engine and sweep events. nil disables
// logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
