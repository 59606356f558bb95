package batch

import (
	"context"
	"sync"

	dombatch "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/batch"
)

// operation processes a single identifier.
type operation func(ctx context.Context, id string) error

// run executes op for every id with at most opts.concurrency in flight.
// ids must already be deduplicated and non-empty. Per-item failures land in
// the report; run itself never fails.
//
// The queue is a prefilled closed channel, so each id is received by exactly
// one worker. The progress callback fires under the results mutex, which
// keeps the done sequence strictly 1..N.
func run(ctx context.Context, ids []string, op operation, opts runOptions) dombatch.Report {
	total := len(ids)
	workers := opts.concurrency
	if workers > total {
		workers = total
	}

	queue := make(chan string, total)
	for _, id := range ids {
		queue <- id
	}
	close(queue)

	var (
		mu        sync.Mutex
		done      int
		succeeded []string
		failed    []dombatch.Failure
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range queue {
				err := op(ctx, id)

				mu.Lock()
				if err != nil {
					failed = append(failed, dombatch.NewFailure(id, err))
				} else {
					succeeded = append(succeeded, id)
				}
				done++
				if opts.onProgress != nil {
					opts.onProgress(dombatch.Progress{Done: done, Total: total})
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return dombatch.NewReport(succeeded, failed)
}

// runBulk executes a single bulk call covering all ids. On success every id
// succeeds; on failure every id fails with the same error. Progress fires
// exactly once at completion, since the backend reports nothing finer.
func runBulk(ctx context.Context, ids []string, call func(ctx context.Context) error, opts runOptions) dombatch.Report {
	total := len(ids)
	err := call(ctx)

	var report dombatch.Report
	if err != nil {
		failed := make([]dombatch.Failure, total)
		for i, id := range ids {
			failed[i] = dombatch.NewFailure(id, err)
		}
		report = dombatch.NewReport(nil, failed)
	} else {
		report = dombatch.NewReport(append([]string(nil), ids...), nil)
	}

	if opts.onProgress != nil {
		opts.onProgress(dombatch.Progress{Done: total, Total: total})
	}
	return report
}

// dedup drops repeated ids, keeping the first occurrence's position.
func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
