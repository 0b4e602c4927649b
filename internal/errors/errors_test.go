package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeDecode,
				Message: "failed to decode document",
				Err:     errors.New("unexpected '}' at 1:4"),
			},
			expected: "decode: failed to decode document: unexpected '}' at 1:4",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeConfig,
				Message: "indent out of range",
			},
			expected: "config: indent out of range",
		},
		{
			name: "error with path",
			appError: &AppError{
				Type:    ErrorTypeInvalidKey,
				Message: "got int key 5",
				Path:    "$.a[2]",
				Err:     ErrInvalidKey,
			},
			expected: "invalid_key: got int key 5 at $.a[2]: object key must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := NewDecodeError(wrappedErr)

	assert.Equal(t, wrappedErr, appErr.Unwrap())
	assert.ErrorIs(t, NewInvalidKeyError("$", 1), ErrInvalidKey)
	assert.ErrorIs(t, NewUnsupportedTypeError("$", struct{}{}), ErrUnsupportedType)
	assert.ErrorIs(t, NewAssignmentError("$", "a", ErrDuplicateKey), ErrDuplicateKey)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "same type",
			appError: NewInvalidKeyError("$", 1),
			target:   &AppError{Type: ErrorTypeInvalidKey},
			expected: true,
		},
		{
			name:     "different type",
			appError: NewInvalidKeyError("$", 1),
			target:   &AppError{Type: ErrorTypeUnsupportedType},
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: NewInvalidKeyError("$", 1),
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Is(tt.target)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNonFiniteError("$", 0))
	assert.Equal(t, ErrorTypeNonFinite, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(errors.New("plain")))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "decode error",
			err:      NewDecodeError(errors.New("unexpected end of input at 1:9")),
			expected: "Parse error: unexpected end of input at 1:9",
		},
		{
			name:     "unsupported type",
			err:      NewUnsupportedTypeError("$.a", struct{ X int }{1}),
			expected: "Unsupported dynamic type: struct { X int }: {1} at $.a",
		},
		{
			name:     "invalid key",
			err:      NewInvalidKeyError("$", 5),
			expected: "Object key must be string: got int key 5 at $",
		},
		{
			name:     "assignment",
			err:      NewAssignmentError("$.user", "id", ErrDuplicateKey),
			expected: `Failed to set object property: property "id" at $.user: duplicate key`,
		},
		{
			name:     "config error",
			err:      NewConfigError("pretty.indent must be between 0 and 8", ErrInvalidConfig),
			expected: "Config error: pretty.indent must be between 0 and 8: invalid configuration",
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserFriendlyError(tt.err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
