package report

import (
	"net/http"

	"github.com/Abraxas-365/insightshub/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("REPORT")

// Error codes
var (
	CodeReportNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Report job not found")
	CodeEnqueueFailed   = ErrRegistry.Register("ENQUEUE_FAILED", errx.TypeInternal, http.StatusServiceUnavailable, "Failed to enqueue report job")
	CodeRenderFailed    = ErrRegistry.Register("RENDER_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to render report")
	CodeStoreFailed     = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to persist report job state")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid report request")
	CodeQueueConnection = ErrRegistry.Register("QUEUE_CONNECTION_ERROR", errx.TypeInternal, http.StatusServiceUnavailable, "Queue service unavailable")
)

// Helper functions
func ErrReportNotFound() *errx.Error {
	return ErrRegistry.New(CodeReportNotFound)
}

func ErrEnqueueFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeEnqueueFailed, cause)
}

func ErrRenderFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeRenderFailed, cause)
}

func ErrStoreFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreFailed, cause)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrQueueConnection(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeQueueConnection, cause)
}
