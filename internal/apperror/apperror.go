// Package apperror defines the error taxonomy surfaced by the service layer.
// Controllers translate these into HTTP statuses; everything else wraps and
// rethrows with fmt.Errorf("...: %w", err).
package apperror

import "fmt"

// ValidationError signals bad caller input detected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError names the entity that could not be resolved.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func NewNotFound(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// StorageError wraps an image upload or read failure.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorage(message string, err error) *StorageError {
	return &StorageError{Message: message, Err: err}
}

// AIGradingError wraps a grading call or response-parsing failure. Raw keeps
// the original model output for diagnostics; it is logged, never returned to
// clients.
type AIGradingError struct {
	Message string
	Raw     string
	Err     error
}

func (e *AIGradingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AIGradingError) Unwrap() error { return e.Err }

func NewAIGrading(message string, raw string, err error) *AIGradingError {
	return &AIGradingError{Message: message, Raw: raw, Err: err}
}

// AuthorizationError signals access to a resource owned by another user.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func NewAuthorization(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}
