package hodconsole

import (
	dombatch "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/batch"
	batchuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/batch"
)

// Progress is a point-in-time completion snapshot for a running batch.
type Progress struct {
	Done  int
	Total int
}

// BatchFailure records one identifier that could not be processed.
type BatchFailure struct {
	ID  string
	Err error
}

// BatchReport is the aggregate outcome of a batch operation. Every submitted
// id lands in exactly one of the two lists; callers inspect len(Failed) to
// distinguish full success from partial failure.
type BatchReport struct {
	Succeeded []string
	Failed    []BatchFailure
}

// AllSucceeded reports whether no identifier failed.
func (r BatchReport) AllSucceeded() bool { return len(r.Failed) == 0 }

// BatchOption configures a single batch run.
type BatchOption interface {
	apply() batchuc.Option
}

type batchOptionFunc func() batchuc.Option

func (f batchOptionFunc) apply() batchuc.Option { return f() }

// WithBatchConcurrency overrides the in-flight request bound for one run.
func WithBatchConcurrency(k int) BatchOption {
	return batchOptionFunc(func() batchuc.Option {
		return batchuc.WithConcurrency(k)
	})
}

// OnProgress sets a callback invoked after each completed item. Bulk
// single-call operations invoke it exactly once at completion.
func OnProgress(fn func(Progress)) BatchOption {
	return batchOptionFunc(func() batchuc.Option {
		return batchuc.WithProgress(func(p dombatch.Progress) {
			fn(Progress{Done: p.Done, Total: p.Total})
		})
	})
}

func toInternalBatchOptions(opts []BatchOption) []batchuc.Option {
	out := make([]batchuc.Option, len(opts))
	for i, o := range opts {
		out[i] = o.apply()
	}
	return out
}

func fromInternalReport(report dombatch.Report) BatchReport {
	out := BatchReport{
		Succeeded: report.Succeeded(),
		Failed:    make([]BatchFailure, 0, len(report.Failed())),
	}
	for _, f := range report.Failed() {
		out.Failed = append(out.Failed, BatchFailure{ID: f.ID(), Err: f.Err()})
	}
	return out
}
