// Package apperr defines the sentinel errors shared by repositories, services
// and handlers. Callers should match them with errors.Is; the HTTP layer maps
// each one to a status code and a {"message": ...} body.
package apperr

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// Auth errors (invalid, forged or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
