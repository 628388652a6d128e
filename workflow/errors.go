package workflow

import "errors"

// The four failure kinds every lifecycle operation can surface. Services
// wrap them with context via fmt.Errorf("%w: ..."); handlers map them to
// HTTP status codes with errors.Is. None are retried internally.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid transition")
)
