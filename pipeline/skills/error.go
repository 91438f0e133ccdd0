package skills

import (
	"net/http"

	"github.com/Abraxas-365/insightshub/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SKILLS")

// Error codes
var (
	CodeJDReadFailed   = ErrRegistry.Register("JD_READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to read job description")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid scoring request")
)

// Helper functions
func ErrJDReadFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeJDReadFailed, cause)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
