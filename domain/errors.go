package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodePersistence  ErrorCode = "PERSISTENCE"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrGameNotFound   = NewError(ErrCodeNotFound, "game not found")
	ErrTaskNotFound   = NewError(ErrCodeNotFound, "task not found")
	ErrMemberNotFound = NewError(ErrCodeNotFound, "member not found")

	ErrTitleRequired         = NewError(ErrCodeValidation, "title is required")
	ErrGameNameRequired      = NewError(ErrCodeValidation, "game name is required")
	ErrMemberNameRequired    = NewError(ErrCodeValidation, "member name is required")
	ErrCommentTextRequired   = NewError(ErrCodeValidation, "comment text is required")
	ErrCommentAuthorRequired = NewError(ErrCodeValidation, "comment author is required")
	ErrDeleteReasonRequired  = NewError(ErrCodeValidation, "delete reason is required")

	ErrInvalidPayload = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
