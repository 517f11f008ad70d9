// Package resource provides process-wide budgeting for query workers.
//
// A single Controller can be shared by several trees to cap the total number
// of concurrently running query workers, preventing oversubscription when
// many parallel queries run at once.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds resource limits.
type Config struct {
	// MaxQueryWorkers is the maximum number of concurrently running query
	// workers across all parallel calls sharing this controller.
	// If 0, defaults to 1.
	MaxQueryWorkers int64
}

// Controller budgets query workers across concurrent parallel calls.
// A nil *Controller is valid and applies no budget.
type Controller struct {
	cfg Config

	sem      *semaphore.Weighted
	inFlight atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxQueryWorkers <= 0 {
		cfg.MaxQueryWorkers = 1
	}
	return &Controller{
		cfg: cfg,
		sem: semaphore.NewWeighted(cfg.MaxQueryWorkers),
	}
}

// AcquireWorker reserves a worker slot, blocking until one is available or
// ctx is canceled.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.inFlight.Add(1)
	return nil
}

// TryAcquireWorker reserves a worker slot without blocking and reports
// whether the reservation succeeded.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	if !c.sem.TryAcquire(1) {
		return false
	}
	c.inFlight.Add(1)
	return true
}

// ReleaseWorker returns a previously acquired worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.inFlight.Add(-1)
	c.sem.Release(1)
}

// InFlight reports the number of currently running workers.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

// MaxQueryWorkers reports the configured worker budget.
func (c *Controller) MaxQueryWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxQueryWorkers
}
