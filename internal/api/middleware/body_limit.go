package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

// BodyLimit caps the request body at maxBytes. Reads past the cap fail with
// http.MaxBytesReader's error, which is reported as 413.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Fail(c, apperr.PayloadTooLarge("Request body too large"))
				return
			}
		}
	}
}
