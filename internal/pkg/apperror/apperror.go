package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller
type Kind int

const (
	// KindInternal is an infrastructure failure, surfaced as 500
	KindInternal Kind = iota
	// KindValidation is malformed input or a violated business rule, surfaced as 400
	KindValidation
	// KindNotFound is a missing entity, surfaced as 404
	KindNotFound
	// KindUnauthorized is a failed credential check, surfaced as 401
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// AppError carries a machine-readable code alongside the message
type AppError struct {
	Code    string
	Message string
	Kind    Kind
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation creates a business-rule rejection
func Validation(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindValidation}
}

// NotFound creates a not-found error
func NotFound(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindNotFound}
}

// Unauthorized creates a credential failure
func Unauthorized(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindUnauthorized}
}

// Internal wraps an infrastructure failure
func Internal(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindInternal, Err: err}
}

// As extracts an *AppError from err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "" if there is none
func CodeOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a not-found AppError
func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == KindNotFound
}
