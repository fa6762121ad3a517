package domain

import "errors"

// Error kinds shared by all layers. Usecase and service errors wrap one of
// them so callers can branch with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidSchedule   = errors.New("invalid schedule")
	ErrConflict          = errors.New("conflict")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)
