// Package response renders the JSON bodies of the sales API.
package response

import (
	"net/http"

	deliverycontext "salesboard/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`             // Human-readable failure, including the cause for import failures
	Code      string `json:"code"`              // Machine-readable error code, e.g. "ROW_VALIDATION_FAILED"
	Details   string `json:"details,omitempty"` // Offending column or input, only for 4xx errors
	RequestID string `json:"request_id,omitempty"`
}

// JSON writes data as the raw response body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes data with status 200.
func OK(c echo.Context, data any) error {
	return JSON(c, http.StatusOK, data)
}

// Error writes an ErrorResponse. Details are dropped for 5xx errors.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
