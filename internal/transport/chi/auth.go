package chi

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	domhod "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/hod"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/logger"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/restapi"
)

type sessionCtxKey struct{}

// sessionFromContext returns the verified session for the request.
func sessionFromContext(ctx context.Context) (domhod.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(domhod.Session)
	return sess, ok
}

// SessionMiddleware verifies the console JWT, loads the session, and plants
// the backend token into the request context so the restapi client forwards
// it downstream.
func (s *Server) SessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing or malformed authorization header")
				return
			}

			sess, err := s.auth.Verify(r.Context(), token)
			if err != nil {
				s.handleDomainError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			ctx = restapi.ContextWithToken(ctx, sess.BackendToken())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Login handles POST /auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, h, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	logger.FromContext(r.Context()).Info("hod logged in", zap.String("hod_id", h.ID()))
	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		HOD:   hodJSON{ID: h.ID(), Name: h.Name()},
	})
}

// Me handles GET /auth/me: the identity behind the current session.
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no session")
		return
	}
	h := sess.HOD()
	writeJSON(w, http.StatusOK, hodJSON{ID: h.ID(), Name: h.Name()})
}

// Logout handles POST /auth/logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := s.auth.Logout(r.Context(), token); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func bearerToken(r *http.Request) (string, bool) {
	const bearerPrefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", false
	}
	token := auth[len(bearerPrefix):]
	return token, token != ""
}
