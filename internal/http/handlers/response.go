// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// Failures share one envelope, produced by the resmsg package:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "message": "user id={8a1c1b7e-0c53-4f57-9d0e-6c1d2f7b9a10} not found",
//	  "error": "Not Found",
//	  "statusCode": 404
//	}
//
// For 400 responses "message" is an array with one sentence per invalid
// field. The correlation ID travels in the X-Request-ID response header.
//
// Conventions:
//   - `fail()` centralizes error logging and formatting, ensuring 5xx responses
//     are logged with request context for observability.
//   - `ok()` writes success bodies in a consistent way across handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platcon/platcon-api/internal/http/middleware"
	"github.com/platcon/platcon-api/internal/resmsg"
)

// fail aborts the request with he's status and envelope.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, he *resmsg.HTTPError) {
	if he.Status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", he.Status).
			Strs("messages", he.Messages).
			Msg("api error")
	}
	c.AbortWithStatusJSON(he.Status, he.Body())
}

// Fail is the exported variant of fail() for callers outside this package
// (e.g., NoRoute handlers in router setup).
func Fail(c *gin.Context, status int, msgs ...string) {
	fail(c, &resmsg.HTTPError{Status: status, Messages: msgs})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
