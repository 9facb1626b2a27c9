package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport mapping and logging
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeExternal      Type = "EXTERNAL"
	TypeInternal      Type = "INTERNAL"
)

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of a single domain,
// namespaced by a prefix (e.g. "SESSION" -> "SESSION_NOT_FOUND")
type Registry struct {
	prefix string
	defs   map[string]definition
}

// Code identifies a registered error definition
type Code struct {
	registry *Registry
	key      string
}

func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[string]definition),
	}
}

// Register adds an error definition to the registry and returns its code.
// Called from package-level var blocks; not safe for concurrent use.
func (r *Registry) Register(key string, errType Type, httpStatus int, message string) Code {
	r.defs[key] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return Code{registry: r, key: key}
}

// New creates an error from a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.defs[code.key]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       r.prefix + "_UNKNOWN",
			Message:    "unknown error code: " + code.key,
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Type:       def.errType,
		Code:       r.prefix + "_" + code.key,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithCause creates an error from a registered code wrapping an underlying cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.Cause = cause
	return e
}

// Error is the canonical application error. It carries everything the HTTP
// layer needs, so handlers can return it directly to the global error handler.
type Error struct {
	Type       Type           `json:"type"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithDetail attaches a single key/value pair for diagnostics
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges a map of diagnostic values
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// HTTPResponse is the wire shape produced by ToHTTPResponse
type HTTPResponse struct {
	Error   string         `json:"error"`
	Type    Type           `json:"type"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToHTTPResponse converts the error to its JSON body representation
func (e *Error) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{
		Error:   e.Message,
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// Wrap converts an arbitrary error into an *Error with the given message and type
func Wrap(err error, message string, errType Type) *Error {
	status := http.StatusInternalServerError
	switch errType {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeAuthorization:
		status = http.StatusForbidden
	case TypeBusiness:
		status = http.StatusUnprocessableEntity
	case TypeExternal:
		status = http.StatusBadGateway
	}
	return &Error{
		Type:       errType,
		Code:       string(errType),
		Message:    message,
		HTTPStatus: status,
		Cause:      err,
	}
}

// IsCode reports whether err is an *Error created from the given code
func IsCode(err error, code Code) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Code == code.registry.prefix+"_"+code.key
}
