package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
	}
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NotFoundError creates a 404 error.
func NotFoundError(message string) *AppError {
	return NewAppError("ERR_NOT_FOUND", "", message, http.StatusNotFound)
}

// BadRequestError creates a 400 error.
func BadRequestError(field, message string) *AppError {
	return NewAppError("ERR_BAD_REQUEST", field, message, http.StatusBadRequest)
}

// TooManyRequestsError creates a 429 error.
func TooManyRequestsError(message string) *AppError {
	return NewAppError("ERR_RATE_LIMITED", "", message, http.StatusTooManyRequests)
}

// FromHTTPError maps an echo error (unknown route, throttled caller, bad
// body) onto an AppError.
func FromHTTPError(he *echo.HTTPError) *AppError {
	msg := fmt.Sprint(he.Message)
	var appErr *AppError
	switch he.Code {
	case http.StatusNotFound:
		appErr = NotFoundError(msg)
	case http.StatusTooManyRequests:
		appErr = TooManyRequestsError(msg)
	case http.StatusBadRequest:
		appErr = BadRequestError("", msg)
	default:
		appErr = NewAppError("ERR_HTTP", "", msg, he.Code)
	}
	return appErr.WithError(he.Internal)
}
