package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{"invalid input type", ErrTypeInvalidInput, "INVALID_INPUT"},
		{"infeasible type", ErrTypeInfeasible, "INFEASIBLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeInvalidInput,
				Message: "invalid clock number",
				Cause:   fmt.Errorf("strconv error"),
			},
			wantMessage: "[INVALID_INPUT] invalid clock number: strconv error",
		},
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeInfeasible,
				Message: "no-load current too high",
				Cause:   nil,
			},
			wantMessage: "[INFEASIBLE] no-load current too high",
		},
		{
			name: "error with empty message",
			appError: &AppError{
				Type:    ErrTypeInvalidInput,
				Message: "",
				Cause:   nil,
			},
			wantMessage: "[INVALID_INPUT] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appError.Error()
			assert.Equal(t, tt.wantMessage, got)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")

	withCause := NewInvalidInputError("bad code", cause)
	assert.Equal(t, cause, withCause.Unwrap())

	withoutCause := NewInfeasibleError("impossible quantity")
	assert.Nil(t, withoutCause.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := NewInvalidInputError("unrecognized winding", nil).
		WithContext("code", "XNd11")

	require.NotNil(t, err.Context)
	assert.Equal(t, "XNd11", err.Context["code"])

	// Context survives further additions
	err = err.WithContext("side", "from")
	assert.Equal(t, "XNd11", err.Context["code"])
	assert.Equal(t, "from", err.Context["side"])
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantInvalid    bool
		wantInfeasible bool
	}{
		{
			name:        "invalid input error",
			err:         NewInvalidInputError("bad code", nil),
			wantInvalid: true,
		},
		{
			name:           "infeasible error",
			err:            NewInfeasibleError("too high"),
			wantInfeasible: true,
		},
		{
			name:        "wrapped invalid input error",
			err:         fmt.Errorf("parse vector group: %w", NewInvalidInputError("bad code", nil)),
			wantInvalid: true,
		},
		{
			name: "plain error matches neither",
			err:  fmt.Errorf("plain error"),
		},
		{
			name: "nil error matches neither",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantInvalid, IsInvalidInput(tt.err))
			assert.Equal(t, tt.wantInfeasible, IsInfeasible(tt.err))
		})
	}
}
