package service

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP
// statuses; anything else is an internal error.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)
