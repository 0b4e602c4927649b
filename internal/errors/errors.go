package errors

import (
	"errors"
	"fmt"
)

// Standard bridge errors
var (
	ErrUnsupportedType = errors.New("unsupported dynamic type")
	ErrInvalidKey      = errors.New("object key must be a string")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrNonFinite       = errors.New("non-finite number")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeDecode          ErrorType = "decode"
	ErrorTypeUnsupportedType ErrorType = "unsupported_type"
	ErrorTypeInvalidKey      ErrorType = "invalid_key"
	ErrorTypeAssignment      ErrorType = "assignment"
	ErrorTypeNonFinite       ErrorType = "non_finite"
	ErrorTypeConfig          ErrorType = "config"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// AppError is a conversion error with its category and, for converter
// failures, the path of the offending node.
type AppError struct {
	Type    ErrorType
	Message string
	Path    string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewDecodeError wraps a codec failure
func NewDecodeError(err error) *AppError {
	return &AppError{
		Type:    ErrorTypeDecode,
		Message: "failed to decode document",
		Err:     err,
	}
}

// NewUnsupportedTypeError reports a dynamic value outside the recognized kinds
func NewUnsupportedTypeError(path string, v any) *AppError {
	return &AppError{
		Type:    ErrorTypeUnsupportedType,
		Message: fmt.Sprintf("%T: %v", v, v),
		Path:    path,
		Err:     ErrUnsupportedType,
	}
}

// NewInvalidKeyError reports an object key that is not a string
func NewInvalidKeyError(path string, key any) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidKey,
		Message: fmt.Sprintf("got %T key %v", key, key),
		Path:    path,
		Err:     ErrInvalidKey,
	}
}

// NewDuplicateKeyError reports two object keys that render as the same string
func NewDuplicateKeyError(path, key string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidKey,
		Message: fmt.Sprintf("key %q appears twice", key),
		Path:    path,
		Err:     ErrDuplicateKey,
	}
}

// NewAssignmentError reports a rejected property assignment on a host object
func NewAssignmentError(path, key string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeAssignment,
		Message: fmt.Sprintf("property %q", key),
		Path:    path,
		Err:     err,
	}
}

// NewNonFiniteError reports a NaN or infinite number under the reject policy
func NewNonFiniteError(path string, n float64) *AppError {
	return &AppError{
		Type:    ErrorTypeNonFinite,
		Message: fmt.Sprintf("%v", n),
		Path:    path,
		Err:     ErrNonFinite,
	}
}

// NewConfigError creates a new error related to configuration
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the category of err, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// UserFriendlyError returns the message surfaced across the bridge boundary
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		detail := appErr.Message
		if appErr.Path != "" {
			detail = fmt.Sprintf("%s at %s", detail, appErr.Path)
		}
		switch appErr.Type {
		case ErrorTypeDecode:
			if appErr.Err != nil {
				return fmt.Sprintf("Parse error: %v", appErr.Err)
			}
			return fmt.Sprintf("Parse error: %s", appErr.Message)
		case ErrorTypeUnsupportedType:
			return fmt.Sprintf("Unsupported dynamic type: %s", detail)
		case ErrorTypeInvalidKey:
			return fmt.Sprintf("Object key must be string: %s", detail)
		case ErrorTypeAssignment:
			return fmt.Sprintf("Failed to set object property: %s: %v", detail, appErr.Err)
		case ErrorTypeNonFinite:
			return fmt.Sprintf("Non-finite number rejected: %s", detail)
		case ErrorTypeConfig:
			if appErr.Err != nil {
				return fmt.Sprintf("Config error: %s: %v", detail, appErr.Err)
			}
			return fmt.Sprintf("Config error: %s", detail)
		default:
			return fmt.Sprintf("Error: %s", detail)
		}
	}

	return fmt.Sprintf("Error: %v", err)
}
