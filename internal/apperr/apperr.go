// Package apperr defines the API error taxonomy and the JSON envelope the
// top-level error handler renders for every failed request.
package apperr

import "errors"

const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Error is a typed API error carrying the HTTP status it maps to.
type Error struct {
	Message    string
	Code       string
	StatusCode int
}

func (e *Error) Error() string { return e.Message }

func New(message, code string, statusCode int) *Error {
	return &Error{Message: message, Code: code, StatusCode: statusCode}
}

func BadRequest(message string) *Error {
	return New(message, CodeBadRequest, 400)
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return New(message, CodeUnauthorized, 401)
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden"
	}
	return New(message, CodeForbidden, 403)
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return New(message, CodeNotFound, 404)
}

func Conflict(message string) *Error {
	return New(message, CodeConflict, 409)
}

func Internal(message string) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return New(message, CodeInternal, 500)
}

func ServiceUnavailable(message string) *Error {
	if message == "" {
		message = "Service unavailable"
	}
	return New(message, CodeServiceUnavailable, 503)
}

// CodeFromStatus maps an HTTP status to the closest error code, for errors
// raised by the framework rather than application code.
func CodeFromStatus(status int) string {
	switch status {
	case 400:
		return CodeBadRequest
	case 401:
		return CodeUnauthorized
	case 403:
		return CodeForbidden
	case 404:
		return CodeNotFound
	case 409:
		return CodeConflict
	case 503:
		return CodeServiceUnavailable
	default:
		return CodeInternal
	}
}

// Envelope is the wire shape of every error response.
type Envelope struct {
	Error Payload `json:"error"`
}

type Payload struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	StatusCode int    `json:"statusCode"`
}

// Response builds the JSON envelope for the error.
func (e *Error) Response() Envelope {
	return Envelope{Error: Payload{
		Message:    e.Message,
		Code:       e.Code,
		StatusCode: e.StatusCode,
	}}
}

// From coerces any error into a typed API error. Errors that are not already
// typed are reported as Internal without leaking detail to the caller.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("")
}
