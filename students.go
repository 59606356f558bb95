package hodconsole

import (
	"context"
	"time"

	batchuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/batch"
	studentuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/student"
)

// StudentFilter narrows an already-fetched student list. Zero values match
// everything.
type StudentFilter struct {
	Semester int
	Division string
	Query    string
}

// StudentSort orders a student list.
type StudentSort string

// Supported student sort keys.
const (
	StudentSortByName       StudentSort = "name"
	StudentSortByEnrollment StudentSort = "enrollment"
	StudentSortBySemester   StudentSort = "semester"
)

// StudentService manages students and their batch operations.
type StudentService struct {
	svc   *studentuc.Service
	batch *batchuc.Service
	obs   *observer
}

// List fetches students, filtered and sorted client-side.
func (s *StudentService) List(ctx context.Context, f StudentFilter, key StudentSort) (_ []Student, err error) {
	start := time.Now()
	defer func() { s.obs.observe("students.list", start, err) }()

	students, err := s.svc.List(ctx, studentuc.Filter{
		Semester: f.Semester,
		Division: f.Division,
		Query:    f.Query,
	}, studentuc.SortKey(key))
	if err != nil {
		return nil, err
	}
	out := make([]Student, len(students))
	for i, st := range students {
		out[i] = fromInternalStudent(st)
	}
	return out, nil
}

// Get retrieves a student by ID.
func (s *StudentService) Get(ctx context.Context, id string) (_ Student, err error) {
	start := time.Now()
	defer func() { s.obs.observe("students.get", start, err) }()

	st, err := s.svc.Get(ctx, id)
	if err != nil {
		return Student{}, err
	}
	return fromInternalStudent(st), nil
}

// Update applies a field map to one student. Only semester and division are
// mutable; everything else is dropped before the call.
func (s *StudentService) Update(ctx context.Context, id string, fields map[string]any) (_ Student, err error) {
	start := time.Now()
	defer func() { s.obs.observe("students.update", start, err) }()

	st, err := s.svc.Update(ctx, id, fields)
	if err != nil {
		return Student{}, err
	}
	return fromInternalStudent(st), nil
}

// Delete removes one student.
func (s *StudentService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("students.delete", start, err) }()

	return s.svc.Delete(ctx, id)
}

// BatchUpdate applies the same field update to every listed student, one
// backend call per student with a bounded number in flight. Per-student
// failures land in the report; the error return covers pre-flight rejection
// only (empty id list after dedup, or no usable update fields).
func (s *StudentService) BatchUpdate(
	ctx context.Context, ids []string, fields map[string]any, opts ...BatchOption,
) (_ BatchReport, err error) {
	start := time.Now()
	defer func() { s.obs.observe("students.batch_update", start, err) }()

	report, err := s.batch.UpdateStudents(ctx, ids, fields, toInternalBatchOptions(opts)...)
	if err != nil {
		return BatchReport{}, err
	}
	s.svc.InvalidateCache()
	return fromInternalReport(report), nil
}

// BatchDelete removes the listed students via the backend's bulk endpoint:
// one call covers every id, so the report is all-or-nothing and progress
// fires once at completion.
func (s *StudentService) BatchDelete(
	ctx context.Context, ids []string, opts ...BatchOption,
) (_ BatchReport, err error) {
	start := time.Now()
	defer func() { s.obs.observe("students.batch_delete", start, err) }()

	report, err := s.batch.DeleteStudents(ctx, ids, toInternalBatchOptions(opts)...)
	if err != nil {
		return BatchReport{}, err
	}
	s.svc.InvalidateCache()
	return fromInternalReport(report), nil
}
