package gbln

import (
	"github.com/mcncl/gbln/internal/errors"
)

// ErrorKind categorizes a bridge failure.
type ErrorKind string

const (
	KindDecode          ErrorKind = ErrorKind(errors.ErrorTypeDecode)
	KindUnsupportedType ErrorKind = ErrorKind(errors.ErrorTypeUnsupportedType)
	KindInvalidKey      ErrorKind = ErrorKind(errors.ErrorTypeInvalidKey)
	KindAssignment      ErrorKind = ErrorKind(errors.ErrorTypeAssignment)
	KindNonFinite       ErrorKind = ErrorKind(errors.ErrorTypeNonFinite)
	KindConfig          ErrorKind = ErrorKind(errors.ErrorTypeConfig)
	KindUnknown         ErrorKind = ErrorKind(errors.ErrorTypeUnknown)
)

// Error is the failure returned by every bridge operation. Message is the
// human-readable text; Kind is stable and meant for errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrDecode)
// holds for every decode failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrDecode          = &Error{Kind: KindDecode, Message: "parse error"}
	ErrUnsupportedType = &Error{Kind: KindUnsupportedType, Message: "unsupported dynamic type"}
	ErrInvalidKey      = &Error{Kind: KindInvalidKey, Message: "object key must be string"}
	ErrAssignment      = &Error{Kind: KindAssignment, Message: "failed to set object property"}
	ErrNonFinite       = &Error{Kind: KindNonFinite, Message: "non-finite number rejected"}
	ErrConfig          = &Error{Kind: KindConfig, Message: "config error"}
)

// boundaryError translates an internal error into an *Error.
func boundaryError(err error) *Error {
	return &Error{
		Kind:    ErrorKind(errors.TypeOf(err)),
		Message: errors.UserFriendlyError(err),
	}
}
