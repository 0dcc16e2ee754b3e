package http

import (
	"github.com/gin-gonic/gin"

	"github.com/stuartshay/otel-demo/internal/infrastructure/tracing"
)

// Stable error codes surfaced in the error envelope.
const (
	codeValidationError    = "VALIDATION_ERROR"
	codeNotFound           = "NOT_FOUND"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"
	codeInternalError      = "INTERNAL_ERROR"
	codeDownloadFailed     = "DOWNLOAD_FAILED"
	codeDownloadError      = "DOWNLOAD_ERROR"
	codeTimeout            = "TIMEOUT"
	codeDBNotConfigured    = "DB_NOT_CONFIGURED"
)

// errorResponse writes the shared error envelope.
func (h *Handlers) errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
		"trace_id": traceID(c),
	})
}

// traceID returns the request's correlation id, minting one if the
// tracing middleware did not run (direct handler tests).
func traceID(c *gin.Context) string {
	if id := tracing.GetTraceID(c.Request.Context()); id != "" {
		return string(id)
	}
	return string(tracing.NewTraceID())
}
