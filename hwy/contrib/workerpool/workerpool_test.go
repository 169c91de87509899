// Copyright 2025 The go-sortnet Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomicZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelForAtomic(0, func(i int) {
		called = true
	})

	if called {
		t.Error("ParallelForAtomic with n=0 should not call fn")
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, batch := range []int{0, 1, 7, 10, 1000} {
		t.Run(fmt.Sprintf("batch=%d", batch), func(t *testing.T) {
			n := 100
			var visits [100]atomic.Int32

			err := pool.ParallelForBatched(context.Background(), n, batch, func(start, end int) error {
				for i := start; i < end; i++ {
					visits[i].Add(1)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("ParallelForBatched() = %v, want nil", err)
			}
			for i := range visits {
				if got := visits[i].Load(); got != 1 {
					t.Errorf("index %d visited %d times, want 1", i, got)
				}
			}
		})
	}
}

func TestParallelForBatchedSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Fewer batches than workers.
	n := 3
	var count atomic.Int32

	err := pool.ParallelForBatched(context.Background(), n, 1, func(start, end int) error {
		count.Add(int32(end - start))
		return nil
	})

	if err != nil || count.Load() != int32(n) {
		t.Errorf("count = %d, err = %v, want %d, nil", count.Load(), err, n)
	}
}

func TestParallelForBatchedLowestError(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Every batch from 37 on fails; the reported error must be batch 37's
	// however the batches were scheduled.
	for range 20 {
		err := pool.ParallelForBatched(context.Background(), 1000, 5, func(start, end int) error {
			if start >= 37*5 {
				return fmt.Errorf("batch at %d", start)
			}
			return nil
		})
		if err == nil || err.Error() != "batch at 185" {
			t.Fatalf("ParallelForBatched() = %v, want batch at 185", err)
		}
	}
}

func TestParallelForBatchedCancel(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	err := pool.ParallelForBatched(ctx, 100, 10, func(start, end int) error {
		called.Store(true)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParallelForBatched(cancelled) = %v, want context.Canceled", err)
	}
	if called.Load() {
		t.Error("fn called after cancellation")
	}
}

func TestParallelForBatchedCancelMidway(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var batches atomic.Int32
	err := pool.ParallelForBatched(ctx, 1000, 1, func(start, end int) error {
		if batches.Add(1) == 10 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParallelForBatched() = %v, want context.Canceled", err)
	}
	if got := batches.Load(); got >= 1000 {
		t.Errorf("ran %d batches after cancellation, want fewer than 1000", got)
	}
}

func TestParallelForBatchedZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	err := pool.ParallelForBatched(context.Background(), 0, 10, func(start, end int) error {
		return errors.New("should not be called")
	})
	if err != nil {
		t.Errorf("ParallelForBatched(n=0) = %v, want nil", err)
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	err := pool.ParallelForBatched(context.Background(), n, 8, func(start, end int) error {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelForBatched() = %v", err)
	}
	pool.ParallelForAtomic(n, func(i int) {
		results[i]++
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2+1 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2+1)
		}
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomic(n, func(i int) {
			_ = i * i
		})
	}
}

func BenchmarkParallelForBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ParallelForBatched(ctx, n, 10, func(start, end int) error {
			for j := start; j < end; j++ {
				_ = j * j
			}
			return nil
		})
	}
}
