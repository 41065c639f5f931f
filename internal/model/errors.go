package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when a request carries no bearer token.
	ErrUnauthenticated = errors.New("missing authorization token")
	// ErrForbidden is returned when a token is invalid or the caller lacks rights.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateEmail is returned when registering an already known email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateSecretID is returned when a generated secret id collides.
	ErrDuplicateSecretID = errors.New("secret id already taken")
	// ErrDependencyFailure is returned when an external collaborator fails.
	ErrDependencyFailure = errors.New("dependency failure")
)
