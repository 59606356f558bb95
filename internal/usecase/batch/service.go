// Package batch drives batch operations against a backend that has no bulk
// update endpoint: per-item calls fan out through a bounded worker pool,
// while delete and membership removal use the backend's true bulk endpoints.
package batch

import (
	"context"
	"fmt"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
	dombatch "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/batch"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/update"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/metrics"
)

// DefaultConcurrency is the number of simultaneously in-flight per-item
// requests when no override is given.
const DefaultConcurrency = 5

// Option configures a single batch run.
type Option func(*runOptions)

type runOptions struct {
	concurrency int
	onProgress  func(dombatch.Progress)
}

// WithConcurrency overrides the maximum number of in-flight requests for
// this run. Values below 1 are ignored.
func WithConcurrency(k int) Option {
	return func(o *runOptions) {
		if k >= 1 {
			o.concurrency = k
		}
	}
}

// WithProgress sets a callback invoked after each completed item.
func WithProgress(fn func(dombatch.Progress)) Option {
	return func(o *runOptions) {
		o.onProgress = fn
	}
}

// Service exposes the batch entry points the console invokes.
type Service struct {
	students       StudentUpdater
	studentsBulk   StudentBulkDeleter
	professorsBulk ProfessorBulkDeleter
	classes        ClassMembership
	concurrency    int
}

// New creates a batch service.
func New(
	students StudentUpdater, studentsBulk StudentBulkDeleter,
	professorsBulk ProfessorBulkDeleter, classes ClassMembership,
) *Service {
	return &Service{
		students:       students,
		studentsBulk:   studentsBulk,
		professorsBulk: professorsBulk,
		classes:        classes,
		concurrency:    DefaultConcurrency,
	}
}

// WithConcurrency configures the default concurrency bound.
func (s *Service) WithConcurrency(k int) *Service {
	if k >= 1 {
		s.concurrency = k
	}
	return s
}

// UpdateStudents applies the same field update to every listed student, one
// backend call per student, at most K in flight. Rejects before any network
// call when the sanitized update is empty or no ids remain after dedup.
func (s *Service) UpdateStudents(
	ctx context.Context, ids []string, fields map[string]any, opts ...Option,
) (dombatch.Report, error) {
	u, err := update.New(fields)
	if err != nil {
		return dombatch.Report{}, fmt.Errorf("batch update: %w", err)
	}
	ids = dedup(ids)
	if len(ids) == 0 {
		return dombatch.Report{}, fmt.Errorf("batch update: %w", domain.ErrEmptyBatch)
	}

	report := run(ctx, ids, func(ctx context.Context, id string) error {
		_, err := s.students.Update(ctx, id, u)
		return err
	}, s.options(opts))
	metrics.RecordBatch("student_update", report)
	return report, nil
}

// DeleteStudents removes the listed students via the backend's bulk endpoint.
func (s *Service) DeleteStudents(
	ctx context.Context, ids []string, opts ...Option,
) (dombatch.Report, error) {
	ids = dedup(ids)
	if len(ids) == 0 {
		return dombatch.Report{}, fmt.Errorf("batch delete: %w", domain.ErrEmptyBatch)
	}

	report := runBulk(ctx, ids, func(ctx context.Context) error {
		return s.studentsBulk.BulkDelete(ctx, ids)
	}, s.options(opts))
	metrics.RecordBatch("student_delete", report)
	return report, nil
}

// DeleteProfessors removes the listed professors via the backend's bulk
// endpoint.
func (s *Service) DeleteProfessors(
	ctx context.Context, ids []string, opts ...Option,
) (dombatch.Report, error) {
	ids = dedup(ids)
	if len(ids) == 0 {
		return dombatch.Report{}, fmt.Errorf("batch delete: %w", domain.ErrEmptyBatch)
	}

	report := runBulk(ctx, ids, func(ctx context.Context) error {
		return s.professorsBulk.BulkDelete(ctx, ids)
	}, s.options(opts))
	metrics.RecordBatch("professor_delete", report)
	return report, nil
}

// RemoveClassStudents removes the listed students from a class in one call.
func (s *Service) RemoveClassStudents(
	ctx context.Context, classID string, ids []string, opts ...Option,
) (dombatch.Report, error) {
	if classID == "" {
		return dombatch.Report{}, fmt.Errorf("remove class students: class ID is required: %w", domain.ErrValidation)
	}
	ids = dedup(ids)
	if len(ids) == 0 {
		return dombatch.Report{}, fmt.Errorf("remove class students: %w", domain.ErrEmptyBatch)
	}

	report := runBulk(ctx, ids, func(ctx context.Context) error {
		return s.classes.RemoveStudents(ctx, classID, ids)
	}, s.options(opts))
	metrics.RecordBatch("class_remove_students", report)
	return report, nil
}

// RemoveClassProfessors removes the listed professors from a class in one
// call.
func (s *Service) RemoveClassProfessors(
	ctx context.Context, classID string, ids []string, opts ...Option,
) (dombatch.Report, error) {
	if classID == "" {
		return dombatch.Report{}, fmt.Errorf("remove class professors: class ID is required: %w", domain.ErrValidation)
	}
	ids = dedup(ids)
	if len(ids) == 0 {
		return dombatch.Report{}, fmt.Errorf("remove class professors: %w", domain.ErrEmptyBatch)
	}

	report := runBulk(ctx, ids, func(ctx context.Context) error {
		return s.classes.RemoveProfessors(ctx, classID, ids)
	}, s.options(opts))
	metrics.RecordBatch("class_remove_professors", report)
	return report, nil
}

func (s *Service) options(opts []Option) runOptions {
	o := runOptions{concurrency: s.concurrency}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
