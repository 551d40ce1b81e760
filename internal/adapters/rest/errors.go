package rest

import (
	"fmt"

	"sacco-desk/internal/core/domain"
)

// APIError represents a non-2xx response from the backend. It carries the
// backend's message verbatim so business-rule rejections (e.g. insufficient
// balance) surface exactly as the server phrased them.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return e.Message
}

// Unwrap maps well-known statuses onto domain sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case 401:
		return domain.ErrUnauthorized
	case 403:
		return domain.ErrForbidden
	case 404:
		return domain.ErrNotFound
	}
	return nil
}

// ValidationError represents a 422 validation failure with the backend's
// structured field -> messages mapping.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// Unwrap lets callers match validation failures with errors.Is.
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}
