// Package parallel provides the bounded-concurrency batch runner the
// Froidure-Pin engine uses once a pending batch grows past its configured
// concurrency threshold.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// WorkerPool bounds the concurrency of independent, order-insensitive
// tasks submitted from a single call site. Adapted from the teacher's
// dynamic worker pool (internal/parallel/pool.go), trimmed down to the one
// shape Froidure-Pin's batched element expansion actually needs: submit a
// batch, block until every task in it has run, and propagate the first
// error (or context cancellation) without losing track of in-flight
// goroutines. The teacher's dynamic up/down scaling, execution-statistics
// collector, and deadlock detector have no batch-boundary equivalent to
// attach to here and are dropped rather than carried along unused (see
// DESIGN.md).
type WorkerPool struct {
	sem chan struct{}
}

// NewWorkerPool creates a pool bounding concurrency to maxWorkers (the
// number of CPU cores if maxWorkers <= 0).
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return &WorkerPool{sem: make(chan struct{}, maxWorkers)}
}

// GetWorkerCount returns the pool's concurrency bound.
func (wp *WorkerPool) GetWorkerCount() int { return cap(wp.sem) }

// RunBatch runs fn(i) for every i in [0, n), at most GetWorkerCount() at a
// time, blocking until all dispatched tasks have returned. ctx cancellation
// is checked before dispatching each fresh task, so a cancelled batch stops
// starting new work immediately, though tasks already dispatched still run
// to completion. The first non-nil error any task returns is the result;
// absent one, ctx.Err() is returned (nil if the batch ran to completion).
func (wp *WorkerPool) RunBatch(ctx context.Context, n int, fn func(i int) error) error {
	var wg sync.WaitGroup
	errCh := make(chan error, 1)
dispatch:
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break dispatch
		}
		select {
		case wp.sem <- struct{}{}:
		case <-ctx.Done():
			break dispatch
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-wp.sem }()
			if err := fn(i); err != nil {
				select {
				case errCh <- err:
				default:
				}
			}
		}(i)
	}
	wg.Wait()
	select {
	case err := <-errCh:
		return err
	default:
	}
	return ctx.Err()
}
