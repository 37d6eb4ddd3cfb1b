// Package resource tracks and bounds the memory held by in-flight sweep runs.
//
// Every run owns one encoded matrix whose size is known up front
// (rows × wordsPerRow × 8 bytes), so a weighted semaphore sized to the
// configured budget gives a hard bound on peak managed memory across the
// worker pool.
package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when a single allocation is larger than
// the whole configured budget and could never be admitted.
var ErrMemoryLimitExceeded = errors.New("allocation exceeds memory limit")

// Controller admits allocations against a fixed memory budget.
// A nil *Controller admits everything, so callers may skip the nil check.
type Controller struct {
	limit   int64
	sem     *semaphore.Weighted
	memUsed atomic.Int64
}

// NewController returns a controller enforcing the given budget in bytes.
// A non-positive limit disables enforcement (tracking only).
func NewController(limitBytes int64) *Controller {
	c := &Controller{limit: limitBytes}
	if limitBytes > 0 {
		c.sem = semaphore.NewWeighted(limitBytes)
	}
	return c
}

// Acquire blocks until bytes can be admitted within the budget, or returns
// the context error on cancellation. Allocations larger than the whole
// budget fail immediately with ErrMemoryLimitExceeded.
func (c *Controller) Acquire(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}
	if c.sem != nil {
		if bytes > c.limit {
			return ErrMemoryLimitExceeded
		}
		if err := c.sem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}
	c.memUsed.Add(bytes)
	return nil
}

// Release returns bytes to the budget.
func (c *Controller) Release(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.sem != nil {
		c.sem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// Used reports the currently admitted bytes.
func (c *Controller) Used() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}
