package apperrors

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes; everything else surfaces as a 500.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrValidation         = errors.New("validation failed")
)
