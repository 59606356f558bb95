package class

import (
	"context"

	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
)

// Repository is the backend-facing store for classes.
type Repository interface {
	List(ctx context.Context) ([]domclass.Class, error)
	Get(ctx context.Context, id string) (domclass.Class, error)
	Delete(ctx context.Context, id string) error
	AssignStudents(ctx context.Context, classID string, studentIDs []string) error
	AssignProfessors(ctx context.Context, classID string, professorIDs []string) error
}
