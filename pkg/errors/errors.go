package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so clones and wrapped instances compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e != nil && t != nil && e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for the portal's failure taxonomy.
var (
	ErrUnknownUser     = New("UNKNOWN_USER", "unknown username")
	ErrBadCredential   = New("BAD_CREDENTIAL", "incorrect password")
	ErrCourseNotFound  = New("COURSE_NOT_FOUND", "course not found")
	ErrEnrollmentCap   = New("ENROLLMENT_CAP", "maximum course enrollment reached")
	ErrAlreadyEnrolled = New("ALREADY_ENROLLED", "already enrolled in this course")
	ErrSectionFull     = New("SECTION_FULL", "course section is full")
	ErrNotEnrolled     = New("NOT_ENROLLED", "not enrolled in this course")
	ErrInvalidGrade    = New("INVALID_GRADE", "grade must be between 0 and 100")
	ErrNoSuchRecord    = New("NO_SUCH_RECORD", "no academic record for this course")
	ErrUserExists      = New("USER_EXISTS", "username already taken")
	ErrInvalidRole     = New("INVALID_ROLE", "invalid role")
	ErrValidation      = New("VALIDATION_ERROR", "validation failed")
	ErrInternal        = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
