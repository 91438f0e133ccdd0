package errx

import (
	"fmt"
	"net/http"
)

// Type classifies errors for logging and HTTP mapping
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
)

// Code is a registered error definition. Registering returns the value,
// which domain packages keep as package-level vars.
type Code struct {
	Registry   string
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry scopes error codes under a domain prefix (e.g. "DATASET")
type Registry struct {
	prefix string
}

// NewRegistry creates a registry for a domain package
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines a new error code under this registry
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		Registry:   r.prefix,
		Code:       code,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// New creates a fresh error instance for the given code
func (r *Registry) New(c Code) *Error {
	return &Error{
		Type:       c.Type,
		Code:       fmt.Sprintf("%s.%s", c.Registry, c.Code),
		Message:    c.Message,
		HTTPStatus: c.HTTPStatus,
	}
}

// NewWithCause creates an error for the given code wrapping an underlying cause
func (r *Registry) NewWithCause(c Code, cause error) *Error {
	e := r.New(c)
	e.cause = cause
	return e
}

// Error is the concrete error type carried across layers
type Error struct {
	Type       Type           `json:"type"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair for diagnostics and API responses
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// ToHTTPResponse returns the JSON body served for this error
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error with the given message and type
func Wrap(err error, message string, t Type) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Type:       t,
		Code:       fmt.Sprintf("%s.WRAPPED", t),
		Message:    message,
		HTTPStatus: httpStatusFor(t),
		cause:      err,
	}
}

func httpStatusFor(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
