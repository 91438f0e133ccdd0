package bottleneck

import (
	"net/http"

	"github.com/Abraxas-365/insightshub/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("BOTTLENECK")

// Error codes
var (
	CodeInvalidThreshold = ErrRegistry.Register("INVALID_THRESHOLD", errx.TypeValidation, http.StatusBadRequest, "Threshold must be a positive number of days")
	CodeInvalidRecipient = ErrRegistry.Register("INVALID_RECIPIENT", errx.TypeValidation, http.StatusBadRequest, "Invalid alert recipient address")
	CodeSendFailed       = ErrRegistry.Register("SEND_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to dispatch alerts")
)

// Helper functions
func ErrInvalidThreshold() *errx.Error {
	return ErrRegistry.New(CodeInvalidThreshold)
}

func ErrInvalidRecipient() *errx.Error {
	return ErrRegistry.New(CodeInvalidRecipient)
}

func ErrSendFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeSendFailed, cause)
}
