package raycloud

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// workerCount resolves the pool size: <= 0 means one worker per CPU, and there
// are never more workers than items.
func workerCount(workers, items int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}
	return imax(workers, 1)
}

// parallelMap applies fn to every item on a fixed pool of workers and returns
// the per-item results flattened in input order. fn must not touch shared
// mutable state. The first failing item cancels the remaining work and its
// error is returned; no partial result is produced.
func parallelMap[T, R any](ctx context.Context, stage string, workers int, items []T, fn func(T) ([]R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}
	workers = workerCount(workers, len(items))
	DebugLog("Stage %s: %d items on %d workers", stage, len(items), workers)

	results := make([][]R, len(items))
	var cursor, done atomic.Int64
	nextPrint := int64(1)
	if len(items) >= 100 {
		nextPrint = int64(len(items) / 100) // ~1%
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				i := int(cursor.Add(1) - 1)
				if i >= len(items) {
					return nil
				}
				out, err := fn(items[i])
				if err != nil {
					return fmt.Errorf("%s: item %d: %w", stage, i, err)
				}
				results[i] = out
				finished := done.Add(1)
				if Progress && finished%nextPrint == 0 {
					fmt.Printf("[PROGRESS] %s %.2f%%\n", stage, Real(finished)*100/Real(len(items)))
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	flat := make([]R, 0, total)
	for _, r := range results {
		flat = append(flat, r...)
	}
	return flat, nil
}
