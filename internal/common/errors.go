// Package common defines the sentinel errors shared by the service and
// transport layers. Callers match them with errors.Is.
package common

import "errors"

var (
	// ErrNotAuthenticated is returned before any store access when no
	// identity accompanies the call.
	ErrNotAuthenticated = errors.New("user not authenticated")

	// ErrNotAuthorized is returned when the caller is authenticated but does
	// not own the targeted record.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound is returned when the targeted record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers rejected input such as an unknown track status.
	ErrValidation = errors.New("validation error")

	// ErrInvalidToken covers malformed or wrongly signed access tokens.
	ErrInvalidToken = errors.New("invalid token")
)
