package hodconsole

import "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound           = domain.ErrNotFound
	ErrAlreadyExists      = domain.ErrAlreadyExists
	ErrValidation         = domain.ErrValidation
	ErrUnauthorized       = domain.ErrUnauthorized
	ErrEmptyBatch         = domain.ErrEmptyBatch
	ErrEmptyUpdate        = domain.ErrEmptyUpdate
	ErrBackendUnavailable = domain.ErrBackendUnavailable
)
