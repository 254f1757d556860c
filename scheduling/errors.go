package scheduling

import "errors"

// Failure kinds surfaced by the scheduling core. Controllers map these
// to HTTP statuses; anything not matching one of them is an internal
// storage fault.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)
