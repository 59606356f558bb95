package batch

import (
	"context"

	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/update"
)

// StudentUpdater applies a sanitized update to one student.
type StudentUpdater interface {
	Update(ctx context.Context, id string, u update.Update) (domstudent.Student, error)
}

// StudentBulkDeleter removes many students in one backend call.
type StudentBulkDeleter interface {
	BulkDelete(ctx context.Context, ids []string) error
}

// ProfessorBulkDeleter removes many professors in one backend call.
type ProfessorBulkDeleter interface {
	BulkDelete(ctx context.Context, ids []string) error
}

// ClassMembership removes members from a class in one backend call.
type ClassMembership interface {
	RemoveStudents(ctx context.Context, classID string, studentIDs []string) error
	RemoveProfessors(ctx context.Context, classID string, professorIDs []string) error
}
