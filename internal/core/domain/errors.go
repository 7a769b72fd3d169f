package domain

import "errors"

// Sentinel errors raised by the core services. The HTTP layer owns the
// mapping to status codes; messages here must stay safe to display.
var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrTokenInvalid       = errors.New("invalid token")

	// ErrAccountNotFound is internal to the credential store. The auth
	// service collapses it into ErrInvalidCredentials so that an unknown
	// username and a wrong password are indistinguishable to callers.
	ErrAccountNotFound = errors.New("account not found")
)
