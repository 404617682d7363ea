package domain

import "errors"

// Error taxonomy shared by every layer. Callers match with errors.Is; the HTTP
// error handler is the only place that turns these into status codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrConflict           = errors.New("resource already exists")
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrPersistence        = errors.New("persistence failure")
	ErrInProgress         = errors.New("request already in progress")
)
