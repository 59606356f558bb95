package student

import (
	"context"

	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/update"
)

// Repository is the backend-facing store for students.
type Repository interface {
	List(ctx context.Context) ([]domstudent.Student, error)
	Get(ctx context.Context, id string) (domstudent.Student, error)
	Update(ctx context.Context, id string, u update.Update) (domstudent.Student, error)
	Delete(ctx context.Context, id string) error
}
