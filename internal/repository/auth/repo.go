// Package auth is the backend-facing repository for HOD authentication.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	domhod "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/hod"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/restapi/envelope"
)

// api is the consumer interface for the backend transport (ISP).
type api interface {
	Post(ctx context.Context, path string, body any) ([]byte, error)
}

// Repo implements usecase/auth.BackendAuthenticator.
type Repo struct {
	api api
}

// New creates an auth repository.
func New(a api) *Repo {
	return &Repo{api: a}
}

type loginResponse struct {
	Token string `json:"token"`
	Data  struct {
		Token string `json:"token"`
	} `json:"data"`
}

type hodDTO struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	Name    string `json:"name"`
}

// Login authenticates the HOD against the backend and returns the identity
// plus the backend bearer token.
func (r *Repo) Login(ctx context.Context, email, password string) (domhod.HOD, string, error) {
	raw, err := r.api.Post(ctx, "/hod/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return domhod.HOD{}, "", fmt.Errorf("hod login: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domhod.HOD{}, "", fmt.Errorf("hod login: decode response: %w", err)
	}
	token := resp.Token
	if token == "" {
		token = resp.Data.Token
	}
	if token == "" {
		return domhod.HOD{}, "", fmt.Errorf("hod login: backend returned no token")
	}

	// Identity block is optional in older backend versions.
	var dto hodDTO
	if obj := envelope.Object(raw, "hod"); obj != nil {
		_ = json.Unmarshal(obj, &dto)
	}
	id := dto.ID
	if id == "" {
		id = dto.MongoID
	}
	return domhod.NewHOD(id, dto.Name), token, nil
}
