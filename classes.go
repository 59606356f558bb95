package hodconsole

import (
	"context"
	"time"

	batchuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/batch"
	classuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/class"
)

// ClassFilter narrows an already-fetched class list.
type ClassFilter struct {
	Semester int
	Division string
	Query    string
}

// ClassService manages classes and their membership operations.
type ClassService struct {
	svc        *classuc.Service
	batch      *batchuc.Service
	obs        *observer
	invalidate func()
}

// List fetches classes, filtered client-side and sorted by name.
func (s *ClassService) List(ctx context.Context, f ClassFilter) (_ []Class, err error) {
	start := time.Now()
	defer func() { s.obs.observe("classes.list", start, err) }()

	classes, err := s.svc.List(ctx, classuc.Filter{
		Semester: f.Semester,
		Division: f.Division,
		Query:    f.Query,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Class, len(classes))
	for i, c := range classes {
		out[i] = fromInternalClass(c)
	}
	return out, nil
}

// Get retrieves a class by ID.
func (s *ClassService) Get(ctx context.Context, id string) (_ Class, err error) {
	start := time.Now()
	defer func() { s.obs.observe("classes.get", start, err) }()

	c, err := s.svc.Get(ctx, id)
	if err != nil {
		return Class{}, err
	}
	return fromInternalClass(c), nil
}

// Delete removes one class.
func (s *ClassService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("classes.delete", start, err) }()

	return s.svc.Delete(ctx, id)
}

// AssignStudents adds students to a class in one backend call.
func (s *ClassService) AssignStudents(ctx context.Context, classID string, studentIDs []string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("classes.assign_students", start, err) }()

	if err := s.svc.AssignStudents(ctx, classID, studentIDs); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// AssignProfessors adds professors to a class in one backend call.
func (s *ClassService) AssignProfessors(ctx context.Context, classID string, professorIDs []string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("classes.assign_professors", start, err) }()

	if err := s.svc.AssignProfessors(ctx, classID, professorIDs); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// RemoveStudents removes the listed students from a class via the backend's
// bulk endpoint: one call covers every id, so the report is all-or-nothing
// and progress fires once at completion.
func (s *ClassService) RemoveStudents(
	ctx context.Context, classID string, studentIDs []string, opts ...BatchOption,
) (_ BatchReport, err error) {
	start := time.Now()
	defer func() { s.obs.observe("classes.remove_students", start, err) }()

	report, err := s.batch.RemoveClassStudents(ctx, classID, studentIDs, toInternalBatchOptions(opts)...)
	if err != nil {
		return BatchReport{}, err
	}
	s.svc.InvalidateCache()
	s.invalidate()
	return fromInternalReport(report), nil
}

// RemoveProfessors removes the listed professors from a class via the
// backend's bulk endpoint.
func (s *ClassService) RemoveProfessors(
	ctx context.Context, classID string, professorIDs []string, opts ...BatchOption,
) (_ BatchReport, err error) {
	start := time.Now()
	defer func() { s.obs.observe("classes.remove_professors", start, err) }()

	report, err := s.batch.RemoveClassProfessors(ctx, classID, professorIDs, toInternalBatchOptions(opts)...)
	if err != nil {
		return BatchReport{}, err
	}
	s.svc.InvalidateCache()
	s.invalidate()
	return fromInternalReport(report), nil
}
