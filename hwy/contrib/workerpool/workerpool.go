// Copyright 2025 The go-sortnet Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for parallel
// computation. A Pool is created once and reused across many operations, so
// no goroutines are spawned per call.
//
// The sorting networks themselves are single-threaded; the pool spreads
// independent work over cores: batches of zero-one patterns during
// validation, or many small arrays sorted side by side.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForBatched(ctx, 1<<size, 1<<12, func(start, end int) error {
//	    return checkPatterns(start, end)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run hands fn to up to workers pool goroutines and waits for all of them.
// A closed pool, or a single worker, runs fn on the caller's goroutine.
func (p *Pool) run(workers int, fn func()) {
	if workers <= 1 || p.closed.Load() {
		fn()
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}
	wg.Wait()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. This provides better load balancing when work per item varies.
// Blocks until all work completes.
//
// fn receives the index to process.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	var nextIdx atomic.Int64
	p.run(min(p.numWorkers, n), func() {
		for {
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			fn(idx)
		}
	})
}

// ParallelForBatched executes fn for batches [start, end) covering [0, n),
// handed out in increasing order by atomic work stealing.
//
// No new batch is started once fn has returned an error or ctx is done.
// Batches are grabbed in order, so every batch below a failing one still
// runs to completion; the error returned is the one from the lowest failing
// batch. If ctx stopped the loop first, ctx.Err() is returned.
func (p *Pool) ParallelForBatched(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	numBatches := (n + batchSize - 1) / batchSize

	var (
		nextBatch  atomic.Int64
		stop       atomic.Bool
		ctxStopped atomic.Bool
		mu         sync.Mutex
		errBatch   int
		firstErr   error
	)
	p.run(min(p.numWorkers, numBatches), func() {
		for !stop.Load() {
			if ctx.Err() != nil {
				ctxStopped.Store(true)
				stop.Store(true)
				return
			}
			batch := int(nextBatch.Add(1)) - 1
			start := batch * batchSize
			if start >= n {
				return
			}
			if err := fn(start, min(start+batchSize, n)); err != nil {
				stop.Store(true)
				mu.Lock()
				if firstErr == nil || batch < errBatch {
					errBatch, firstErr = batch, err
				}
				mu.Unlock()
				return
			}
		}
	})

	if firstErr != nil {
		return firstErr
	}
	if ctxStopped.Load() {
		return ctx.Err()
	}
	return nil
}
