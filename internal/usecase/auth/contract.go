package auth

import (
	"context"

	domhod "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/hod"
)

// BackendAuthenticator verifies HOD credentials against the backend.
type BackendAuthenticator interface {
	Login(ctx context.Context, email, password string) (domhod.HOD, string, error)
}

// SessionStore persists console sessions.
type SessionStore interface {
	Save(ctx context.Context, id string, sess domhod.Session) error
	Get(ctx context.Context, id string) (domhod.Session, error)
	Delete(ctx context.Context, id string) error
}
