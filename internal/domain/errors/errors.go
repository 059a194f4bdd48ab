package errors

import (
	"fmt"
	"net/http"

	"salesboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code, so WithDetails copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// ErrMissingInput is returned when the upload has no file or no platform name.
	ErrMissingInput = NewBaseError(
		http.StatusBadRequest,
		"MISSING_INPUT",
		"file and platform_name are required",
		"",
	)

	// ErrInvalidCSV is returned when the upload cannot be read as a CSV with the expected header.
	ErrInvalidCSV = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CSV",
		"invalid CSV file",
		"",
	)

	// ErrInvalidFilter is returned for malformed or inconsistent report filters.
	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"invalid filter parameters",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// RowValidationError reports the first bad column of an import row.
// Row is the 1-based data row number; 0 refers to the header.
type RowValidationError struct {
	Row    int
	Column string
	Reason string
}

// NewRowValidationError creates a RowValidationError
func NewRowValidationError(row int, column, reason string) *RowValidationError {
	return &RowValidationError{Row: row, Column: column, Reason: reason}
}

func (e *RowValidationError) Error() string {
	return fmt.Sprintf("row %d: column %s: %s", e.Row, e.Column, e.Reason)
}

func (e *RowValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *RowValidationError) ErrorCode() string {
	return "ROW_VALIDATION_FAILED"
}

func (e *RowValidationError) Message() string {
	return e.Error()
}

func (e *RowValidationError) Details() string {
	return e.Column
}

// ImportFailedError wraps the failure that rolled back an import batch.
// A row validation cause keeps its client-error status, code and message.
type ImportFailedError struct {
	Platform string
	Row      int
	cause    error
}

// NewImportFailedError creates an ImportFailedError for the given row (0 when not row-specific)
func NewImportFailedError(platform string, row int, cause error) *ImportFailedError {
	return &ImportFailedError{Platform: platform, Row: row, cause: cause}
}

func (e *ImportFailedError) rowCause() (*RowValidationError, bool) {
	var rowErr *RowValidationError
	ok := errors.As(e.cause, &rowErr)

	return rowErr, ok
}

func (e *ImportFailedError) Error() string {
	if rowErr, ok := e.rowCause(); ok {
		return rowErr.Error()
	}
	if e.Row > 0 {
		return fmt.Sprintf("import failed at row %d: %v", e.Row, e.cause)
	}

	return fmt.Sprintf("import failed: %v", e.cause)
}

// Unwrap exposes the underlying cause
func (e *ImportFailedError) Unwrap() error {
	return e.cause
}

func (e *ImportFailedError) HTTPCode() int {
	if rowErr, ok := e.rowCause(); ok {
		return rowErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

func (e *ImportFailedError) ErrorCode() string {
	if rowErr, ok := e.rowCause(); ok {
		return rowErr.ErrorCode()
	}

	return "IMPORT_FAILED"
}

// Message includes the cause text so callers can see why the batch was rolled back.
func (e *ImportFailedError) Message() string {
	return e.Error()
}

// Details names the offending column for a row validation cause, otherwise the platform.
func (e *ImportFailedError) Details() string {
	if rowErr, ok := e.rowCause(); ok {
		return rowErr.Details()
	}

	return e.Platform
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
