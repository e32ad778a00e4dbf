package worker

import (
	"context"
)

// BatchFunc processes one chunk of items
type BatchFunc[T, R any] func(ctx context.Context, chunk []T) R

// BatchProcessor splits a slice into chunks and processes them concurrently
type BatchProcessor[T, R any] struct {
	fn          BatchFunc[T, R]
	concurrency int
	chunkSize   int
	progress    *Progress
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor[T, R any](fn func(ctx context.Context, chunk []T) R, concurrency, chunkSize int) *BatchProcessor[T, R] {
	if chunkSize <= 0 {
		chunkSize = 1
	}
	return &BatchProcessor[T, R]{
		fn:          fn,
		concurrency: concurrency,
		chunkSize:   chunkSize,
	}
}

// WithProgress reports each finished chunk to p
func (b *BatchProcessor[T, R]) WithProgress(p *Progress) *BatchProcessor[T, R] {
	b.progress = p
	return b
}

// Process runs fn over every chunk of items. Results arrive in completion
// order, not chunk order.
func (b *BatchProcessor[T, R]) Process(ctx context.Context, items []T) []R {
	if len(items) == 0 {
		return []R{}
	}

	pool := NewPool[R](ctx, b.concurrency)
	pool.Start()
	defer pool.Shutdown()

	// Feed from a separate goroutine so a full queue cannot stall collection
	go func() {
		for start := 0; start < len(items); start += b.chunkSize {
			chunk := items[start:min(start+b.chunkSize, len(items))]
			pool.Submit(JobFunc[R](func(ctx context.Context) R {
				r := b.fn(ctx, chunk)
				b.progress.Add(len(chunk))
				return r
			}))
		}
		pool.Close()
	}()

	results := make([]R, 0, (len(items)+b.chunkSize-1)/b.chunkSize)
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}
