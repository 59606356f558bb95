package hodconsole

import (
	"context"
	"time"

	batchuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/batch"
	professoruc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/professor"
)

// ProfessorFilter narrows an already-fetched professor list.
type ProfessorFilter struct {
	Query string
}

// ProfessorService manages professors and their batch operations.
type ProfessorService struct {
	svc   *professoruc.Service
	batch *batchuc.Service
	obs   *observer
}

// List fetches professors, filtered client-side and sorted by name.
func (s *ProfessorService) List(ctx context.Context, f ProfessorFilter) (_ []Professor, err error) {
	start := time.Now()
	defer func() { s.obs.observe("professors.list", start, err) }()

	professors, err := s.svc.List(ctx, professoruc.Filter{Query: f.Query})
	if err != nil {
		return nil, err
	}
	out := make([]Professor, len(professors))
	for i, p := range professors {
		out[i] = fromInternalProfessor(p)
	}
	return out, nil
}

// Get retrieves a professor by ID.
func (s *ProfessorService) Get(ctx context.Context, id string) (_ Professor, err error) {
	start := time.Now()
	defer func() { s.obs.observe("professors.get", start, err) }()

	p, err := s.svc.Get(ctx, id)
	if err != nil {
		return Professor{}, err
	}
	return fromInternalProfessor(p), nil
}

// Delete removes one professor.
func (s *ProfessorService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("professors.delete", start, err) }()

	return s.svc.Delete(ctx, id)
}

// BatchDelete removes the listed professors via the backend's bulk endpoint.
func (s *ProfessorService) BatchDelete(
	ctx context.Context, ids []string, opts ...BatchOption,
) (_ BatchReport, err error) {
	start := time.Now()
	defer func() { s.obs.observe("professors.batch_delete", start, err) }()

	report, err := s.batch.DeleteProfessors(ctx, ids, toInternalBatchOptions(opts)...)
	if err != nil {
		return BatchReport{}, err
	}
	s.svc.InvalidateCache()
	return fromInternalReport(report), nil
}
