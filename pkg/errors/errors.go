// Package errors defines the closed set of error kinds surfaced by the
// conversion library. Only two kinds exist: invalid input (a malformed or
// unrecognized vector-group code or clock value) and infeasible quantity
// (a physically inconsistent nameplate specification). Both are returned
// synchronously to the caller and never retried or recovered internally.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the kind of error
type ErrorType string

const (
	// ErrTypeInvalidInput marks a malformed or unrecognized input string,
	// such as a vector-group code with an unknown winding letter or an
	// out-of-range clock number.
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	// ErrTypeInfeasible marks a physically inconsistent nameplate quantity,
	// such as a no-load current above the nominal current. It signals
	// corrupt source data that the caller must reject.
	ErrTypeInfeasible ErrorType = "INFEASIBLE"
)

// AppError represents a library-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new library error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidInputError creates an invalid-input error
func NewInvalidInputError(message string, cause error) *AppError {
	return NewAppError(ErrTypeInvalidInput, message, cause)
}

// NewInfeasibleError creates an infeasible-quantity error
func NewInfeasibleError(message string) *AppError {
	return NewAppError(ErrTypeInfeasible, message, nil)
}

// IsInvalidInput reports whether err is an invalid-input error
func IsInvalidInput(err error) bool {
	return isType(err, ErrTypeInvalidInput)
}

// IsInfeasible reports whether err is an infeasible-quantity error
func IsInfeasible(err error) bool {
	return isType(err, ErrTypeInfeasible)
}

func isType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}
