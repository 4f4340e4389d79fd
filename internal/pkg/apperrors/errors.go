package apperrors

import (
	"errors"
	"fmt"

	"github.com/yigit/registrar/internal/pkg/idalloc"
)

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
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors. ErrStoreUnavailable is the allocator's sentinel so that
	// errors.Is matches failures raised deep inside a creation transaction.
	ErrStoreUnavailable = idalloc.ErrStoreUnavailable
	ErrFileStorage      = errors.New("file storage failure")
)

// Record errors. Not-found errors wrap ErrResourceNotFound and duplicate
// errors wrap ErrConflict.
var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrResourceNotFound)
	ErrStudentNotFound      = fmt.Errorf("student %w", ErrResourceNotFound)
	ErrFacultyNotFound      = fmt.Errorf("faculty member %w", ErrResourceNotFound)
	ErrDepartmentNotFound   = fmt.Errorf("department %w", ErrResourceNotFound)
	ErrCourseNotFound       = fmt.Errorf("course %w", ErrResourceNotFound)
	ErrAcademicYearNotFound = fmt.Errorf("academic year %w", ErrResourceNotFound)
	ErrContactNotFound      = fmt.Errorf("contact %w", ErrResourceNotFound)

	ErrEmailAlreadyExists = fmt.Errorf("email already exists: %w", ErrConflict)
	ErrIdentifierExists   = fmt.Errorf("identifier already exists: %w", ErrConflict)
	ErrAcademicYearExists = fmt.Errorf("academic year name already exists: %w", ErrConflict)
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

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether err matches target or any of errList
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
