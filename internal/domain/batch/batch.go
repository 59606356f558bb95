// Package batch holds the outcome types shared by the batch runner and its
// callers.
package batch

// Failure records one identifier that could not be processed.
type Failure struct {
	id  string
	err error
}

// NewFailure creates a failure record for an identifier.
func NewFailure(id string, err error) Failure { return Failure{id: id, err: err} }

// ID returns the failed identifier.
func (f Failure) ID() string { return f.id }

// Err returns the captured error.
func (f Failure) Err() error { return f.err }

// Report is the aggregate outcome of a batch operation. Every identifier
// submitted to the runner appears in exactly one of the two lists.
type Report struct {
	succeeded []string
	failed    []Failure
}

// NewReport creates a report from the collected outcomes.
func NewReport(succeeded []string, failed []Failure) Report {
	return Report{succeeded: succeeded, failed: failed}
}

// Succeeded returns the identifiers processed without error.
func (r Report) Succeeded() []string { return r.succeeded }

// Failed returns the per-identifier failures.
func (r Report) Failed() []Failure { return r.failed }

// Total returns the number of identifiers attempted.
func (r Report) Total() int { return len(r.succeeded) + len(r.failed) }

// AllSucceeded reports whether no identifier failed.
func (r Report) AllSucceeded() bool { return len(r.failed) == 0 }

// Progress is a point-in-time completion snapshot passed to progress
// callbacks. Done increases by exactly one per callback and equals Total on
// the terminal call.
type Progress struct {
	Done  int
	Total int
}
