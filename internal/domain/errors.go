package domain

import "errors"

var (
	// ErrNotFound signals a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate entity.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation signals a request rejected by the backend as invalid.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized signals a missing or rejected credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSessionExpired signals an expired or unknown console session.
	ErrSessionExpired = errors.New("session expired")
	// ErrEmptyBatch signals a batch with no identifiers after deduplication.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrEmptyUpdate signals an update payload with no usable fields.
	ErrEmptyUpdate = errors.New("empty update")
	// ErrBackendUnavailable signals that the remote backend could not be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
