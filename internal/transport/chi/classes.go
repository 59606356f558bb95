package chi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	classuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/class"
)

// ListClasses handles GET /classes.
func (s *Server) ListClasses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := classuc.Filter{
		Division: q.Get("division"),
		Query:    q.Get("q"),
	}
	if sem := q.Get("semester"); sem != "" {
		n, err := strconv.Atoi(sem)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "semester must be a number")
			return
		}
		filter.Semester = n
	}

	classes, err := s.classes.List(r.Context(), filter)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]classJSON, len(classes))
	for i, c := range classes {
		out[i] = classToJSON(c)
	}
	writeJSON(w, http.StatusOK, map[string]any{"classes": out})
}

// GetClass handles GET /classes/{id}.
func (s *Server) GetClass(w http.ResponseWriter, r *http.Request) {
	c, err := s.classes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classToJSON(c))
}

// DeleteClass handles DELETE /classes/{id}.
func (s *Server) DeleteClass(w http.ResponseWriter, r *http.Request) {
	if err := s.classes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "class deleted"})
}

// AssignClassStudents handles POST /classes/{id}/students.
func (s *Server) AssignClassStudents(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.classes.AssignStudents(r.Context(), chi.URLParam(r, "id"), req.StudentIDs); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "students assigned"})
}

// RemoveClassStudents handles POST /classes/{id}/students/remove: a single
// bulk backend call reported per-id.
func (s *Server) RemoveClassStudents(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := s.batch.RemoveClassStudents(r.Context(), chi.URLParam(r, "id"), req.StudentIDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.classes.InvalidateCache()
	writeJSON(w, http.StatusOK, reportToJSON(report))
}

// AssignClassProfessors handles POST /classes/{id}/professors.
func (s *Server) AssignClassProfessors(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.classes.AssignProfessors(r.Context(), chi.URLParam(r, "id"), req.ProfessorIDs); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "professors assigned"})
}

// RemoveClassProfessors handles POST /classes/{id}/professors/remove.
func (s *Server) RemoveClassProfessors(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := s.batch.RemoveClassProfessors(r.Context(), chi.URLParam(r, "id"), req.ProfessorIDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.classes.InvalidateCache()
	writeJSON(w, http.StatusOK, reportToJSON(report))
}
