// Package professor is the backend-facing repository for professor records.
package professor

import (
	"context"
	"fmt"

	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/restapi/envelope"
)

const envelopeKey = "professors"

// api is the consumer interface for the backend transport (ISP).
type api interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string, body any) ([]byte, error)
}

// Repo implements usecase professor repositories.
type Repo struct {
	api api
}

// New creates a professor repository.
func New(a api) *Repo {
	return &Repo{api: a}
}

// List returns all professors in the department.
func (r *Repo) List(ctx context.Context) ([]domprof.Professor, error) {
	raw, err := r.api.Get(ctx, "/professors")
	if err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}
	items := envelope.List(raw, envelopeKey)
	out := make([]domprof.Professor, 0, len(items))
	for _, item := range items {
		p, err := parseProfessor(item)
		if err != nil {
			return nil, fmt.Errorf("list professors: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns a professor by ID.
func (r *Repo) Get(ctx context.Context, id string) (domprof.Professor, error) {
	raw, err := r.api.Get(ctx, "/professors/"+id)
	if err != nil {
		return domprof.Professor{}, fmt.Errorf("get professor %s: %w", id, err)
	}
	obj := envelope.Object(raw, "professor")
	if obj == nil {
		return domprof.Professor{}, fmt.Errorf("get professor %s: empty response", id)
	}
	return parseProfessor(obj)
}

// Delete removes one professor.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.api.Delete(ctx, "/professors/"+id, nil); err != nil {
		return fmt.Errorf("delete professor %s: %w", id, err)
	}
	return nil
}

// BulkDelete removes many professors in a single backend call.
func (r *Repo) BulkDelete(ctx context.Context, ids []string) error {
	body := map[string]any{"professorIds": ids}
	if _, err := r.api.Post(ctx, "/professors/bulk-delete", body); err != nil {
		return fmt.Errorf("bulk delete professors: %w", err)
	}
	return nil
}
