package domain

import "errors"

// Common domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Session errors
var (
	ErrNoSession        = errors.New("no active session")
	ErrNotAuthenticated = errors.New("user not authenticated")
)

// Transaction errors
var (
	ErrInvalidAction = errors.New("invalid transaction action")
)
