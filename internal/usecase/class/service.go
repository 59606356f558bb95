// Package class handles class CRUD and professor/student assignment.
package class

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/listcache"
)

const cacheKey = "classes"

// Filter narrows an already-fetched class list.
type Filter struct {
	Semester int
	Division string
	Query    string
}

// Service handles class operations.
type Service struct {
	repo  Repository
	cache *listcache.Cache[domclass.Class]
}

// New creates a class service.
func New(repo Repository, cache *listcache.Cache[domclass.Class]) *Service {
	return &Service{repo: repo, cache: cache}
}

// List fetches classes, filtered client-side and sorted by name.
func (s *Service) List(ctx context.Context, f Filter) ([]domclass.Class, error) {
	classes, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	out := make([]domclass.Class, 0, len(classes))
	for _, c := range classes {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Get retrieves a class by ID.
func (s *Service) Get(ctx context.Context, id string) (domclass.Class, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return domclass.Class{}, fmt.Errorf("get class: %w", err)
	}
	return c, nil
}

// Delete removes one class.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	s.InvalidateCache()
	return nil
}

// AssignStudents adds students to a class.
func (s *Service) AssignStudents(ctx context.Context, classID string, studentIDs []string) error {
	if len(studentIDs) == 0 {
		return fmt.Errorf("assign students: %w", domain.ErrEmptyBatch)
	}
	if err := s.repo.AssignStudents(ctx, classID, studentIDs); err != nil {
		return fmt.Errorf("assign students: %w", err)
	}
	s.InvalidateCache()
	return nil
}

// AssignProfessors adds professors to a class.
func (s *Service) AssignProfessors(ctx context.Context, classID string, professorIDs []string) error {
	if len(professorIDs) == 0 {
		return fmt.Errorf("assign professors: %w", domain.ErrEmptyBatch)
	}
	if err := s.repo.AssignProfessors(ctx, classID, professorIDs); err != nil {
		return fmt.Errorf("assign professors: %w", err)
	}
	s.InvalidateCache()
	return nil
}

// InvalidateCache drops the cached list.
func (s *Service) InvalidateCache() {
	if s.cache != nil {
		s.cache.Invalidate(cacheKey)
	}
}

func (s *Service) fetch(ctx context.Context) ([]domclass.Class, error) {
	if s.cache != nil {
		if classes, ok := s.cache.Get(cacheKey); ok {
			return classes, nil
		}
	}
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Put(cacheKey, classes)
	}
	return classes, nil
}

func (f Filter) matches(c domclass.Class) bool {
	if f.Semester > 0 && c.Semester() != f.Semester {
		return false
	}
	if f.Division != "" && !strings.EqualFold(c.Division(), f.Division) {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(c.Name()), strings.ToLower(f.Query)) {
		return false
	}
	return true
}
