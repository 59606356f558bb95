// Package student handles student CRUD and client-side list shaping.
package student

import (
	"context"
	"fmt"
	"sort"
	"strings"

	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/update"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/listcache"
)

const cacheKey = "students"

// Filter narrows an already-fetched student list. Zero values match
// everything.
type Filter struct {
	Semester int
	Division string
	Query    string
}

// SortKey orders a student list.
type SortKey string

// Supported sort keys.
const (
	SortByName       SortKey = "name"
	SortByEnrollment SortKey = "enrollment"
	SortBySemester   SortKey = "semester"
)

// Service handles student operations.
type Service struct {
	repo  Repository
	cache *listcache.Cache[domstudent.Student]
}

// New creates a student service.
func New(repo Repository, cache *listcache.Cache[domstudent.Student]) *Service {
	return &Service{repo: repo, cache: cache}
}

// List fetches students, then filters and sorts client-side. The backend
// list endpoint has no query parameters, so shaping happens here.
func (s *Service) List(ctx context.Context, f Filter, key SortKey) ([]domstudent.Student, error) {
	students, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	out := make([]domstudent.Student, 0, len(students))
	for _, st := range students {
		if f.matches(st) {
			out = append(out, st)
		}
	}
	sortStudents(out, key)
	return out, nil
}

// Get retrieves a student by ID.
func (s *Service) Get(ctx context.Context, id string) (domstudent.Student, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		return domstudent.Student{}, fmt.Errorf("get student: %w", err)
	}
	return st, nil
}

// Update sanitizes the field map and applies it to one student.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) (domstudent.Student, error) {
	u, err := update.New(fields)
	if err != nil {
		return domstudent.Student{}, fmt.Errorf("update student: %w", err)
	}
	st, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return domstudent.Student{}, fmt.Errorf("update student: %w", err)
	}
	s.InvalidateCache()
	return st, nil
}

// Delete removes one student.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	s.InvalidateCache()
	return nil
}

// InvalidateCache drops the cached list. Batch operations call this after
// mutating students outside this service.
func (s *Service) InvalidateCache() {
	if s.cache != nil {
		s.cache.Invalidate(cacheKey)
	}
}

func (s *Service) fetch(ctx context.Context) ([]domstudent.Student, error) {
	if s.cache != nil {
		if students, ok := s.cache.Get(cacheKey); ok {
			return students, nil
		}
	}
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Put(cacheKey, students)
	}
	return students, nil
}

func (f Filter) matches(st domstudent.Student) bool {
	if f.Semester > 0 && st.Semester() != f.Semester {
		return false
	}
	if f.Division != "" && !strings.EqualFold(st.Division(), f.Division) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(st.Name()), q) &&
			!strings.Contains(strings.ToLower(st.Enrollment()), q) {
			return false
		}
	}
	return true
}

func sortStudents(students []domstudent.Student, key SortKey) {
	sort.SliceStable(students, func(i, j int) bool {
		switch key {
		case SortByEnrollment:
			return students[i].Enrollment() < students[j].Enrollment()
		case SortBySemester:
			return students[i].Semester() < students[j].Semester()
		default:
			return students[i].Name() < students[j].Name()
		}
	})
}
