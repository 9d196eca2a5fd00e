// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints: the fixed error envelope, consistent JSON serialization, and
// helpers for common HTTP patterns.
//
// Conventions:
//   - All error responses return an ErrorResponse whose message is fixed
//     per status (see errors.go).
//   - `fail()` centralizes error formatting and ensures 5xx responses are
//     logged with request context for observability.
//   - `ok()` keeps success responses uniform across handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/http/middleware"
)

// ErrorResponse is the fixed error envelope returned by all endpoints.
//
// Fields:
//   - Success: always false for errors.
//   - Error: the HTTP status code, repeated in the body.
//   - Message: the fixed per-status string (see errors.go constants).
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error"   example:"404"`
	Message string `json:"message" example:"This Question Not Found"`
}

// fail aborts the request with the fixed envelope for status and logs
// server-side errors.
//
// Server errors (>=500) are logged using the request-scoped logger from
// middleware; 4xx responses are contract outcomes, not incidents, and are
// left to the access log.
func fail(c *gin.Context, status int) {
	resp := ErrorResponse{
		Success: false,
		Error:   status,
		Message: StatusMessage(status),
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", resp.Message).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return the
// fixed envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int) { fail(c, status) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
