// Package student is the backend-facing repository for student records.
package student

import (
	"context"
	"fmt"

	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/update"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/restapi/envelope"
)

const envelopeKey = "students"

// api is the consumer interface for the backend transport (ISP).
type api interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string, body any) ([]byte, error)
}

// Repo implements usecase student and batch repositories.
type Repo struct {
	api api
}

// New creates a student repository.
func New(a api) *Repo {
	return &Repo{api: a}
}

// List returns all students visible to the HOD.
func (r *Repo) List(ctx context.Context) ([]domstudent.Student, error) {
	raw, err := r.api.Get(ctx, "/students")
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	items := envelope.List(raw, envelopeKey)
	out := make([]domstudent.Student, 0, len(items))
	for _, item := range items {
		s, err := parseStudent(item)
		if err != nil {
			return nil, fmt.Errorf("list students: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Get returns a student by ID.
func (r *Repo) Get(ctx context.Context, id string) (domstudent.Student, error) {
	raw, err := r.api.Get(ctx, "/students/"+id)
	if err != nil {
		return domstudent.Student{}, fmt.Errorf("get student %s: %w", id, err)
	}
	obj := envelope.Object(raw, "student")
	if obj == nil {
		return domstudent.Student{}, fmt.Errorf("get student %s: empty response", id)
	}
	return parseStudent(obj)
}

// Update applies a sanitized field update to one student.
func (r *Repo) Update(ctx context.Context, id string, u update.Update) (domstudent.Student, error) {
	raw, err := r.api.Put(ctx, "/students/"+id, updatePayload(u))
	if err != nil {
		return domstudent.Student{}, fmt.Errorf("update student %s: %w", id, err)
	}
	obj := envelope.Object(raw, "student")
	if obj == nil {
		return domstudent.Student{}, fmt.Errorf("update student %s: empty response", id)
	}
	return parseStudent(obj)
}

// Delete removes one student.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.api.Delete(ctx, "/students/"+id, nil); err != nil {
		return fmt.Errorf("delete student %s: %w", id, err)
	}
	return nil
}

// BulkDelete removes many students in a single backend call.
func (r *Repo) BulkDelete(ctx context.Context, ids []string) error {
	body := map[string]any{"studentIds": ids}
	if _, err := r.api.Post(ctx, "/students/bulk-delete", body); err != nil {
		return fmt.Errorf("bulk delete students: %w", err)
	}
	return nil
}
