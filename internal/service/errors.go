package service

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned before any store access when the caller is not
// authenticated for an operation requiring it.
var ErrUnauthorized = errors.New("authentication required")

// NotFoundError reports a missing referenced entity (post, user, like type,
// like row, survey, answer). Never retried automatically.
type NotFoundError struct {
	Resource string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFound creates a NotFoundError for a resource
func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError reports a missing or invalid field. Surfaced immediately,
// no side effect occurs.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PermissionError reports an authenticated caller acting outside their
// rights (not the owner, not staff).
type PermissionError struct {
	Message string
}

// Error implements the error interface
func (e *PermissionError) Error() string {
	return e.Message
}

// NewPermission creates a PermissionError
func NewPermission(message string) error {
	return &PermissionError{Message: message}
}

// IsPermission reports whether err is a PermissionError
func IsPermission(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
