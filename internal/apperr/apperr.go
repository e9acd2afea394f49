// Package apperr defines the typed errors the service layer throws and the
// central error middleware renders. Every error carries an HTTP status and a
// machine-readable code so the handler layer never has to inspect messages.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes surfaced in the response envelope.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeConflict         = "CONFLICT"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeTokenInvalid     = "TOKEN_INVALID"
	CodeFileUpload       = "FILE_UPLOAD_ERROR"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_ERROR"
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
	CodeMalformedRequest = "MALFORMED_REQUEST"
)

// Error is an operational error with enough shape to render an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	// Details carries field path -> human-readable messages for validation
	// failures; nil for everything else.
	Details map[string][]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithCause attaches an underlying error for logging without changing what
// the client sees.
func (e *Error) WithCause(err error) *Error {
	clone := *e
	clone.cause = err
	return &clone
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NotFound(resource string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Validation(details map[string][]string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: "validation failed",
		Details: details,
	}
}

func ValidationMessage(message string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: message,
	}
}

// Unauthorized is intentionally vague on the credential paths so responses
// cannot be used to enumerate accounts.
func Unauthorized(message string) *Error {
	if message == "" {
		message = "invalid credentials"
	}
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "insufficient permissions"
	}
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// Conflict names the field involved so the client can surface an actionable
// message.
func Conflict(resource, field string) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    CodeConflict,
		Message: fmt.Sprintf("%s with this %s already exists", resource, field),
	}
}

func TokenExpired() *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeTokenExpired, Message: "token has expired"}
}

func TokenInvalid() *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeTokenInvalid, Message: "token is invalid"}
}

func FileUpload(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeFileUpload, Message: message}
}

func RateLimited() *Error {
	return &Error{Status: http.StatusTooManyRequests, Code: CodeRateLimited, Message: "too many requests, slow down"}
}

func RouteNotFound(method, path string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeRouteNotFound,
		Message: fmt.Sprintf("cannot %s %s", method, path),
	}
}

func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "internal server error",
		cause:   err,
	}
}
