package dataset

import (
	"net/http"

	"github.com/Abraxas-365/insightshub/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("DATASET")

// Error codes
var (
	CodeDatasetNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Dataset source not found")
	CodeDatasetNotLoaded  = ErrRegistry.Register("NOT_LOADED", errx.TypeInternal, http.StatusServiceUnavailable, "Dataset has not been loaded")
	CodeSourceUnsupported = ErrRegistry.Register("SOURCE_UNSUPPORTED", errx.TypeValidation, http.StatusBadRequest, "Unsupported dataset source")
	CodeLoadFailed        = ErrRegistry.Register("LOAD_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load dataset")
	CodeInvalidStage      = ErrRegistry.Register("INVALID_STAGE", errx.TypeValidation, http.StatusBadRequest, "Invalid stage filter")
)

// Helper functions
func ErrDatasetNotFound() *errx.Error {
	return ErrRegistry.New(CodeDatasetNotFound)
}

func ErrDatasetNotLoaded() *errx.Error {
	return ErrRegistry.New(CodeDatasetNotLoaded)
}

func ErrSourceUnsupported() *errx.Error {
	return ErrRegistry.New(CodeSourceUnsupported)
}

func ErrLoadFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeLoadFailed, cause)
}

func ErrInvalidStage() *errx.Error {
	return ErrRegistry.New(CodeInvalidStage)
}
