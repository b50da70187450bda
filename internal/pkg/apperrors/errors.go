package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Mentorship application errors
var (
	ErrCapacityExceeded     = errors.New("mentorship capacity exceeded")
	ErrDuplicateApplication = errors.New("duplicate mentorship application")
)

// Domain not-found errors; all of them match ErrResourceNotFound with errors.Is
var (
	ErrStudentNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "Student not found with this PRN"}
	ErrMentorshipNotFound = &CustomError{Err: ErrResourceNotFound, Message: "Mentorship not found"}
	ErrAlumniNotFound     = &CustomError{Err: ErrResourceNotFound, Message: "Alumni not found"}
	ErrInternshipNotFound = &CustomError{Err: ErrResourceNotFound, Message: "Internship not found"}
)

// Alumni errors
var (
	ErrEmailAlreadyExists = &CustomError{Err: ErrResourceAlreadyExists, Message: "An alumni with this email already exists"}
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewCapacityExceededError reports a full mentorship
func NewCapacityExceededError() error {
	return &CustomError{
		Err:     ErrCapacityExceeded,
		Message: "Mentorship is already full",
	}
}

// NewDuplicateApplicationError reports a second application by the same student
func NewDuplicateApplicationError() error {
	return &CustomError{
		Err:     ErrDuplicateApplication,
		Message: "You have already applied to this mentorship",
	}
}

// Is returns whether err matches target or any of the errors in errList
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

// MessageOf returns the user-facing message carried by a CustomError in err's chain
func MessageOf(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message, true
	}
	return "", false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
