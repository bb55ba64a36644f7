package apperrors

import "errors"

// Store errors
var (
	// ErrFileAccess covers any I/O failure while reading or writing a data
	// file. Callers receive it alongside empty/unchanged data; it must never
	// escalate into a process abort.
	ErrFileAccess = errors.New("file access failed")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Registration errors
var (
	// ErrCourseLimitReached is returned when a student already carries the
	// maximum number of registered courses.
	ErrCourseLimitReached = errors.New("course limit reached")

	// ErrScheduleConflict is returned when a course occupies the same
	// schedule slot as one of the student's registered courses.
	ErrScheduleConflict = errors.New("schedule conflict")

	ErrCourseNotFound = errors.New("course not found")
)

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a CustomError wrapping ErrValidationFailed
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewFileAccessError creates a CustomError wrapping ErrFileAccess
func NewFileAccessError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrFileAccess, err),
		Message: message,
	}
}
