// Package session persists console sessions in Redis. Each session holds the
// backend token the gateway forwards on the HOD's behalf.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/db"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
	domhod "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/hod"
)

const keyPrefix = "hodconsole:session:"

// sessionDTO is the persisted wire shape.
type sessionDTO struct {
	HODID        string `json:"hodId"`
	HODName      string `json:"hodName"`
	BackendToken string `json:"backendToken"`
}

// store is the consumer interface for session persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Store implements usecase/auth.SessionStore over a db.KVStore.
type Store struct {
	kv  store
	ttl time.Duration
}

// New creates a session store. Sessions expire after ttl of inactivity.
func New(kv store, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

// Save persists a session under its ID.
func (s *Store) Save(ctx context.Context, id string, sess domhod.Session) error {
	data, err := json.Marshal(sessionDTO{
		HODID:        sess.HOD().ID(),
		HODName:      sess.HOD().Name(),
		BackendToken: sess.BackendToken(),
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.kv.SetWithTTL(ctx, keyPrefix+id, data, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get loads a session and slides its expiry. Unknown or expired sessions
// map to domain.ErrSessionExpired.
func (s *Store) Get(ctx context.Context, id string) (domhod.Session, error) {
	data, err := s.kv.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domhod.Session{}, domain.ErrSessionExpired
		}
		return domhod.Session{}, fmt.Errorf("load session: %w", err)
	}

	var dto sessionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domhod.Session{}, fmt.Errorf("decode session: %w", err)
	}

	// Sliding expiry; a failed refresh is not fatal.
	_ = s.kv.Expire(ctx, keyPrefix+id, s.ttl)
	return domhod.NewSession(domhod.NewHOD(dto.HODID, dto.HODName), dto.BackendToken), nil
}

// Delete removes a session (logout).
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.kv.Del(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
