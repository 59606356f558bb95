// Package auth issues and verifies console sessions. The gateway never hands
// the backend token to the browser; it signs its own JWT whose subject
// points at a Redis-held session record.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
	domhod "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/hod"
)

// DefaultSessionTTL bounds how long an idle console session stays valid.
const DefaultSessionTTL = 12 * time.Hour

// Service handles login, logout, and session verification.
type Service struct {
	backend  BackendAuthenticator
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// New creates an auth service. secret signs console JWTs (HS256).
func New(backend BackendAuthenticator, sessions SessionStore, secret []byte) *Service {
	return &Service{
		backend:  backend,
		sessions: sessions,
		secret:   secret,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
}

// WithSessionTTL configures session lifetime.
func (s *Service) WithSessionTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.ttl = ttl
	}
	return s
}

// Login authenticates against the backend, persists a session, and returns
// the console JWT plus the HOD identity.
func (s *Service) Login(ctx context.Context, email, password string) (string, domhod.HOD, error) {
	if email == "" || password == "" {
		return "", domhod.HOD{}, fmt.Errorf("login: email and password are required: %w", domain.ErrValidation)
	}

	h, backendToken, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return "", domhod.HOD{}, fmt.Errorf("login: %w", err)
	}

	sessionID, err := newSessionID()
	if err != nil {
		return "", domhod.HOD{}, fmt.Errorf("login: %w", err)
	}
	if err := s.sessions.Save(ctx, sessionID, domhod.NewSession(h, backendToken)); err != nil {
		return "", domhod.HOD{}, fmt.Errorf("login: %w", err)
	}

	token, err := s.signToken(sessionID)
	if err != nil {
		return "", domhod.HOD{}, fmt.Errorf("login: %w", err)
	}
	return token, h, nil
}

// Verify parses a console JWT and loads the referenced session.
func (s *Service) Verify(ctx context.Context, tokenString string) (domhod.Session, error) {
	sessionID, err := s.parseToken(tokenString)
	if err != nil {
		return domhod.Session{}, fmt.Errorf("verify session: %w: %w", domain.ErrUnauthorized, err)
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domhod.Session{}, fmt.Errorf("verify session: %w", err)
	}
	return sess, nil
}

// Logout removes the session referenced by the console JWT. An already
// invalid token is treated as logged out.
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	sessionID, err := s.parseToken(tokenString)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Service) signToken(sessionID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		Issuer:    "hodconsole",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *Service) parseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("token has no session subject")
	}
	return claims.Subject, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session ID: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
