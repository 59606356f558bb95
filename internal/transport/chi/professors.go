package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	professoruc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/professor"
)

// ListProfessors handles GET /professors.
func (s *Server) ListProfessors(w http.ResponseWriter, r *http.Request) {
	professors, err := s.professors.List(r.Context(), professoruc.Filter{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]professorJSON, len(professors))
	for i, p := range professors {
		out[i] = professorToJSON(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"professors": out})
}

// GetProfessor handles GET /professors/{id}.
func (s *Server) GetProfessor(w http.ResponseWriter, r *http.Request) {
	p, err := s.professors.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, professorToJSON(p))
}

// DeleteProfessor handles DELETE /professors/{id}.
func (s *Server) DeleteProfessor(w http.ResponseWriter, r *http.Request) {
	if err := s.professors.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "professor deleted"})
}

// BulkDeleteProfessors handles POST /professors/bulk-delete.
func (s *Server) BulkDeleteProfessors(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := s.batch.DeleteProfessors(r.Context(), req.ProfessorIDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.professors.InvalidateCache()
	writeJSON(w, http.StatusOK, reportToJSON(report))
}
