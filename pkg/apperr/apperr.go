package apperr

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes exposed on the wire. Clients pattern-match
// on these, so the mapping from failure kind to code is fixed.
const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeValidation      = "VALIDATION_ERROR"
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// Error is a failure that maps to a stable (status, code, message, details)
// tuple on the wire. Details carries field-path → message pairs for
// validation failures so multi-field form errors are reported together.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ── constructors, one per failure kind ──

// Unauthorized covers bad credentials and invalid or expired tokens.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden covers authenticated but inactive principals.
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// NotFound names the absent entity, with its identifier when known.
func NotFound(resource, id string) *Error {
	message := resource + " not found"
	if id != "" {
		message += fmt.Sprintf(" (ID: %s)", id)
	}
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// Conflict names the colliding field combination.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Code: CodeConflict, Message: message}
}

// Validation carries field-level detail for malformed or out-of-range input.
func Validation(message string, details map[string]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Code: CodeValidation, Message: message, Details: details}
}

// InvalidFile covers upload content rejections (extension, content type,
// signature). Same wire code as Validation but a 400 status.
func InvalidFile(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

// PayloadTooLarge covers oversize uploads and request bodies.
func PayloadTooLarge(message string) *Error {
	return &Error{Status: http.StatusRequestEntityTooLarge, Code: CodePayloadTooLarge, Message: message}
}

// RateLimited covers sliding-window rejections.
func RateLimited(message string) *Error {
	return &Error{Status: http.StatusTooManyRequests, Code: CodeTooManyRequests, Message: message}
}

// Internal never leaks the underlying failure to the client; callers log
// the cause at the boundary.
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal server error"}
}
