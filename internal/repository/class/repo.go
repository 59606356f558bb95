// Package class is the backend-facing repository for class records and the
// professor/student membership endpoints.
package class

import (
	"context"
	"fmt"

	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/restapi/envelope"
)

const envelopeKey = "classes"

// api is the consumer interface for the backend transport (ISP).
type api interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string, body any) ([]byte, error)
}

// Repo implements usecase class repositories.
type Repo struct {
	api api
}

// New creates a class repository.
func New(a api) *Repo {
	return &Repo{api: a}
}

// List returns all classes in the department.
func (r *Repo) List(ctx context.Context) ([]domclass.Class, error) {
	raw, err := r.api.Get(ctx, "/classes")
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	items := envelope.List(raw, envelopeKey)
	out := make([]domclass.Class, 0, len(items))
	for _, item := range items {
		c, err := parseClass(item)
		if err != nil {
			return nil, fmt.Errorf("list classes: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Get returns a class by ID.
func (r *Repo) Get(ctx context.Context, id string) (domclass.Class, error) {
	raw, err := r.api.Get(ctx, "/classes/"+id)
	if err != nil {
		return domclass.Class{}, fmt.Errorf("get class %s: %w", id, err)
	}
	obj := envelope.Object(raw, "class")
	if obj == nil {
		return domclass.Class{}, fmt.Errorf("get class %s: empty response", id)
	}
	return parseClass(obj)
}

// Delete removes one class.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.api.Delete(ctx, "/classes/"+id, nil); err != nil {
		return fmt.Errorf("delete class %s: %w", id, err)
	}
	return nil
}

// AssignStudents adds students to a class in a single backend call.
func (r *Repo) AssignStudents(ctx context.Context, classID string, studentIDs []string) error {
	body := map[string]any{"studentIds": studentIDs}
	if _, err := r.api.Post(ctx, "/classes/"+classID+"/students", body); err != nil {
		return fmt.Errorf("assign students to class %s: %w", classID, err)
	}
	return nil
}

// RemoveStudents removes students from a class in a single backend call.
func (r *Repo) RemoveStudents(ctx context.Context, classID string, studentIDs []string) error {
	body := map[string]any{"studentIds": studentIDs}
	if _, err := r.api.Post(ctx, "/classes/"+classID+"/students/remove", body); err != nil {
		return fmt.Errorf("remove students from class %s: %w", classID, err)
	}
	return nil
}

// AssignProfessors adds professors to a class in a single backend call.
func (r *Repo) AssignProfessors(ctx context.Context, classID string, professorIDs []string) error {
	body := map[string]any{"professorIds": professorIDs}
	if _, err := r.api.Post(ctx, "/classes/"+classID+"/professors", body); err != nil {
		return fmt.Errorf("assign professors to class %s: %w", classID, err)
	}
	return nil
}

// RemoveProfessors removes professors from a class in a single backend call.
func (r *Repo) RemoveProfessors(ctx context.Context, classID string, professorIDs []string) error {
	body := map[string]any{"professorIds": professorIDs}
	if _, err := r.api.Post(ctx, "/classes/"+classID+"/professors/remove", body); err != nil {
		return fmt.Errorf("remove professors from class %s: %w", classID, err)
	}
	return nil
}
