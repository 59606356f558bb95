// Package professor handles professor CRUD and client-side list shaping.
package professor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/listcache"
)

const cacheKey = "professors"

// Filter narrows an already-fetched professor list.
type Filter struct {
	Query string
}

// Service handles professor operations.
type Service struct {
	repo  Repository
	cache *listcache.Cache[domprof.Professor]
}

// New creates a professor service.
func New(repo Repository, cache *listcache.Cache[domprof.Professor]) *Service {
	return &Service{repo: repo, cache: cache}
}

// List fetches professors, filtered client-side and sorted by name.
func (s *Service) List(ctx context.Context, f Filter) ([]domprof.Professor, error) {
	professors, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}

	out := make([]domprof.Professor, 0, len(professors))
	for _, p := range professors {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Get retrieves a professor by ID.
func (s *Service) Get(ctx context.Context, id string) (domprof.Professor, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domprof.Professor{}, fmt.Errorf("get professor: %w", err)
	}
	return p, nil
}

// Delete removes one professor.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete professor: %w", err)
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

func (s *Service) fetch(ctx context.Context) ([]domprof.Professor, error) {
	if s.cache != nil {
		if professors, ok := s.cache.Get(cacheKey); ok {
			return professors, nil
		}
	}
	professors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Put(cacheKey, professors)
	}
	return professors, nil
}

func (f Filter) matches(p domprof.Professor) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Name()), q) ||
		strings.Contains(strings.ToLower(p.Email()), q)
}
