package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
)

// ErrorBody is the envelope every non-2xx response carries.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is the machine-readable failure description.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ── success ──

// OK writes a 200 response with the resource as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the created resource as the body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── failure ──

// Fail writes err in the error envelope. Unknown error types are reported
// generically as INTERNAL_SERVER_ERROR so storage details never leak.
func Fail(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal()
	}
	c.JSON(appErr.Status, ErrorBody{
		Error: ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// AbortWith writes err and stops the middleware chain.
func AbortWith(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
