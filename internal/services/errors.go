package services

import (
	"fmt"

	goa "goa.design/goa/v3/pkg"

	"lanzar/internal/domain"
)

// ErrorType represents the type of error
type ErrorType int

const (
	ErrTypeBadRequest ErrorType = iota
	ErrTypeValidation
	ErrTypeNotFound
	ErrTypeMethodNotAllowed
	ErrTypeInternal
)

// Messages returned to callers. Internal details never leave the server.
const (
	MsgValidationFailed = "Validation failed"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternal         = "Internal server error. Please try again later."
)

// ServiceError is a standardized error interface for all services
type ServiceError struct {
	Type       ErrorType
	Message    string
	Violations domain.Violations
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *ServiceError {
	return &ServiceError{
		Type:    ErrTypeBadRequest,
		Message: message,
	}
}

// NewValidationError creates an error carrying every field violation of a payload
func NewValidationError(violations domain.Violations) *ServiceError {
	return &ServiceError{
		Type:       ErrTypeValidation,
		Message:    MsgValidationFailed,
		Violations: violations,
		Err:        violations,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{
		Type:    ErrTypeNotFound,
		Message: message,
	}
}

// NewMethodNotAllowedError creates a new method not allowed error
func NewMethodNotAllowedError() *ServiceError {
	return &ServiceError{
		Type:    ErrTypeMethodNotAllowed,
		Message: MsgMethodNotAllowed,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *ServiceError {
	return &ServiceError{
		Type:    ErrTypeInternal,
		Message: message,
		Err:     err,
	}
}

// Fault reports an unexpected failure the caller cannot fix, such as an unreadable body
func Fault(format string, args ...any) *goa.ServiceError {
	return goa.Fault(format, args...)
}
