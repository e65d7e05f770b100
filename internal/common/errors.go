package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Common application errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrAlreadyExists   = errors.New("resource already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDatabaseError   = errors.New("database error")
	ErrExtractionError = errors.New("extraction error")
	ErrExportError     = errors.New("export error")
)

// AppError represents an application error with context
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error constructors for common cases
func NewNotFoundError(resource string, id interface{}) *AppError {
	return NewAppError("NOT_FOUND", fmt.Sprintf("%s with id %v not found", resource, id), ErrNotFound)
}

func NewInvalidInputError(message string) *AppError {
	return NewAppError("INVALID_INPUT", message, ErrInvalidInput)
}

func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError("DATABASE_ERROR", fmt.Sprintf("database operation failed: %s", operation), cause)
}

func NewExtractionError(stage string, cause error) *AppError {
	return NewAppError("EXTRACTION_ERROR", fmt.Sprintf("extraction failed at %s", stage), cause)
}

func NewExportError(format string, cause error) *AppError {
	return NewAppError("EXPORT_ERROR", fmt.Sprintf("export to %s failed", format), cause)
}

// GRPCStatus maps an application error to a gRPC status error.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
