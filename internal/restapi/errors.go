package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
)

// BackendError wraps a non-2xx backend response with a best-effort message
// extracted from its body. Unwrap maps the status to a domain sentinel so
// callers can use errors.Is.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (e *BackendError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrAlreadyExists
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return domain.ErrBackendUnavailable
	default:
		return nil
	}
}

func newBackendError(status int, body []byte) *BackendError {
	return &BackendError{Status: status, Message: errorMessage(body)}
}

// errorMessage extracts a human-readable message from a backend error body.
// Shapes seen in the wild: {"message": ...}, {"error": ...},
// {"data": {"message": ...}}. Falls back to empty on anything else.
func errorMessage(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		if s, ok := asString(obj[key]); ok {
			return s
		}
	}
	var inner map[string]json.RawMessage
	if err := json.Unmarshal(obj["data"], &inner); err == nil {
		if s, ok := asString(inner["message"]); ok {
			return s
		}
	}
	return ""
}

func asString(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, s != ""
}
