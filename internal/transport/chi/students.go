package chi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	studentuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/student"
)

// ListStudents handles GET /students with client-side filter/sort params.
func (s *Server) ListStudents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := studentuc.Filter{
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

	students, err := s.students.List(r.Context(), filter, studentuc.SortKey(q.Get("sort")))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]studentJSON, len(students))
	for i, st := range students {
		out[i] = studentToJSON(st)
	}
	writeJSON(w, http.StatusOK, map[string]any{"students": out})
}

// GetStudent handles GET /students/{id}.
func (s *Server) GetStudent(w http.ResponseWriter, r *http.Request) {
	st, err := s.students.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, studentToJSON(st))
}

// UpdateStudent handles PUT /students/{id}. The body is a loose field map;
// sanitization happens in the usecase layer.
func (s *Server) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if !decodeBody(w, r, &fields) {
		return
	}

	st, err := s.students.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, studentToJSON(st))
}

// DeleteStudent handles DELETE /students/{id}.
func (s *Server) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := s.students.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "student deleted"})
}

type batchUpdateRequest struct {
	StudentIDs []string       `json:"studentIds"`
	Updates    map[string]any `json:"updates"`
}

// BatchUpdateStudents handles POST /students/batch-update: one backend call
// per student through the bounded runner.
func (s *Server) BatchUpdateStudents(w http.ResponseWriter, r *http.Request) {
	var req batchUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := s.batch.UpdateStudents(r.Context(), req.StudentIDs, req.Updates)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.students.InvalidateCache()
	writeJSON(w, http.StatusOK, reportToJSON(report))
}

type bulkIDsRequest struct {
	StudentIDs   []string `json:"studentIds"`
	ProfessorIDs []string `json:"professorIds"`
}

// BulkDeleteStudents handles POST /students/bulk-delete: one bulk backend
// call covering all ids.
func (s *Server) BulkDeleteStudents(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := s.batch.DeleteStudents(r.Context(), req.StudentIDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.students.InvalidateCache()
	writeJSON(w, http.StatusOK, reportToJSON(report))
}
