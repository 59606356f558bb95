package professor

import (
	"context"

	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
)

// Repository is the backend-facing store for professors.
type Repository interface {
	List(ctx context.Context) ([]domprof.Professor, error)
	Get(ctx context.Context, id string) (domprof.Professor, error)
	Delete(ctx context.Context, id string) error
}
