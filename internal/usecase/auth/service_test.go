package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
	domhod "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/hod"
)

// --- Mocks ---

type mockBackend struct {
	hod   domhod.HOD
	token string
	err   error
	calls int
}

func (m *mockBackend) Login(_ context.Context, _, _ string) (domhod.HOD, string, error) {
	m.calls++
	return m.hod, m.token, m.err
}

type mockSessions struct {
	saved     map[string]domhod.Session
	saveErr   error
	getErr    error
	deleted   []string
	deleteErr error
}

func newMockSessions() *mockSessions {
	return &mockSessions{saved: make(map[string]domhod.Session)}
}

func (m *mockSessions) Save(_ context.Context, id string, sess domhod.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[id] = sess
	return nil
}

func (m *mockSessions) Get(_ context.Context, id string) (domhod.Session, error) {
	if m.getErr != nil {
		return domhod.Session{}, m.getErr
	}
	sess, ok := m.saved[id]
	if !ok {
		return domhod.Session{}, domain.ErrSessionExpired
	}
	return sess, nil
}

func (m *mockSessions) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.saved, id)
	return nil
}

func newTestService(backend *mockBackend, sessions *mockSessions) *Service {
	return New(backend, sessions, []byte("test-secret"))
}

// --- Tests ---

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	backend := &mockBackend{hod: domhod.NewHOD("h-1", "Dr. Rao"), token: "backend-token"}
	sessions := newMockSessions()
	svc := newTestService(backend, sessions)

	token, h, err := svc.Login(context.Background(), "rao@college.edu", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if h.Name() != "Dr. Rao" {
		t.Errorf("hod = %s, want Dr. Rao", h.Name())
	}
	if len(sessions.saved) != 1 {
		t.Fatalf("saved sessions = %d, want 1", len(sessions.saved))
	}

	sess, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sess.BackendToken() != "backend-token" {
		t.Errorf("backend token = %s", sess.BackendToken())
	}
	if sess.HOD().ID() != "h-1" {
		t.Errorf("hod id = %s, want h-1", sess.HOD().ID())
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	backend := &mockBackend{}
	svc := newTestService(backend, newMockSessions())

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if backend.calls != 0 {
		t.Errorf("backend calls = %d, want 0", backend.calls)
	}
}

func TestLogin_BackendRejection(t *testing.T) {
	backend := &mockBackend{err: domain.ErrUnauthorized}
	svc := newTestService(backend, newMockSessions())

	if _, _, err := svc.Login(context.Background(), "a@b.c", "bad"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerify_GarbageToken(t *testing.T) {
	svc := newTestService(&mockBackend{}, newMockSessions())

	if _, err := svc.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	backend := &mockBackend{hod: domhod.NewHOD("h-1", "Dr. Rao"), token: "bt"}
	sessions := newMockSessions()
	token, _, err := newTestService(backend, sessions).Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	other := New(backend, sessions, []byte("different-secret"))
	if _, err := other.Verify(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	backend := &mockBackend{hod: domhod.NewHOD("h-1", "Dr. Rao"), token: "bt"}
	sessions := newMockSessions()
	svc := newTestService(backend, sessions).WithSessionTTL(time.Hour)

	base := time.Now()
	svc.now = func() time.Time { return base }

	token, _, err := svc.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized after expiry", err)
	}
}

func TestVerify_SessionGone(t *testing.T) {
	backend := &mockBackend{hod: domhod.NewHOD("h-1", "Dr. Rao"), token: "bt"}
	sessions := newMockSessions()
	svc := newTestService(backend, sessions)

	token, _, err := svc.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Simulate Redis eviction.
	sessions.saved = map[string]domhod.Session{}
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("err = %v, want ErrSessionExpired", err)
	}
}

func TestLogout_RemovesSession(t *testing.T) {
	backend := &mockBackend{hod: domhod.NewHOD("h-1", "Dr. Rao"), token: "bt"}
	sessions := newMockSessions()
	svc := newTestService(backend, sessions)

	token, _, err := svc.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(sessions.deleted) != 1 {
		t.Errorf("deleted = %v, want one session", sessions.deleted)
	}
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("err = %v, want ErrSessionExpired after logout", err)
	}
}

func TestLogout_InvalidTokenIsNoop(t *testing.T) {
	sessions := newMockSessions()
	svc := newTestService(&mockBackend{}, sessions)

	if err := svc.Logout(context.Background(), "garbage"); err != nil {
		t.Errorf("Logout = %v, want nil for invalid token", err)
	}
	if len(sessions.deleted) != 0 {
		t.Errorf("deleted = %v, want none", sessions.deleted)
	}
}
