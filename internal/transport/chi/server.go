// Package chi exposes the console's HTTP surface: auth, entity CRUD, and the
// batch endpoints the browser UI drives.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/logger"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/metrics"
	authuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/auth"
	batchuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/batch"
	classuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/class"
	professoruc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/professor"
	studentuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/student"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server hosts the console gateway handlers.
type Server struct {
	auth          *authuc.Service
	students      *studentuc.Service
	professors    *professoruc.Service
	classes       *classuc.Service
	batch         *batchuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates the console gateway server.
func NewServer(
	auth *authuc.Service,
	students *studentuc.Service,
	professors *professoruc.Service,
	classes *classuc.Service,
	batch *batchuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		auth:       auth,
		students:   students,
		professors: professors,
		classes:    classes,
		batch:      batch,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrSessionExpired, http.StatusUnauthorized, "session_expired"),
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, "not_found"),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, "already_exists"),
		sentinelHandler(domain.ErrEmptyBatch, http.StatusBadRequest, "empty_batch"),
		sentinelHandler(domain.ErrEmptyUpdate, http.StatusBadRequest, "empty_update"),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, "validation_failed"),
		sentinelHandler(domain.ErrBackendUnavailable, http.StatusBadGateway, "backend_unavailable"),
	}
	return s
}

// Routes assembles the gateway router.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.requestLogger())
	r.Use(metrics.Middleware())

	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/auth/login", s.Login)

	r.Group(func(r chi.Router) {
		r.Use(s.SessionMiddleware())

		r.Get("/auth/me", s.Me)
		r.Post("/auth/logout", s.Logout)

		r.Route("/students", func(r chi.Router) {
			r.Get("/", s.ListStudents)
			r.Get("/{id}", s.GetStudent)
			r.Put("/{id}", s.UpdateStudent)
			r.Delete("/{id}", s.DeleteStudent)
			r.Post("/batch-update", s.BatchUpdateStudents)
			r.Post("/bulk-delete", s.BulkDeleteStudents)
		})

		r.Route("/professors", func(r chi.Router) {
			r.Get("/", s.ListProfessors)
			r.Get("/{id}", s.GetProfessor)
			r.Delete("/{id}", s.DeleteProfessor)
			r.Post("/bulk-delete", s.BulkDeleteProfessors)
		})

		r.Route("/classes", func(r chi.Router) {
			r.Get("/", s.ListClasses)
			r.Get("/{id}", s.GetClass)
			r.Delete("/{id}", s.DeleteClass)
			r.Post("/{id}/students", s.AssignClassStudents)
			r.Post("/{id}/students/remove", s.RemoveClassStudents)
			r.Post("/{id}/professors", s.AssignClassProfessors)
			r.Post("/{id}/professors/remove", s.RemoveClassProfessors)
		})
	})

	return r
}

// requestLogger plants a request-scoped logger into the context so handlers
// can log with the request id attached.
func (s *Server) requestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := s.logger.With(zap.String("request_id", chiMiddleware.GetReqID(r.Context())))
			next.ServeHTTP(w, r.WithContext(logger.ContextWithLogger(r.Context(), l)))
		})
	}
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDomainError walks the handler chain; unmatched errors become 500.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal", "internal server error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorJSON{Code: code, Message: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return false
	}
	return true
}
