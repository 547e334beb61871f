package errors

import (
	stdErrors "errors"
	"net/http"
	"strings"
)

// Code is the machine-readable error code sent to clients in the "code" field.
type Code string

const (
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeConflict          Code = "CONFLICT"
	CodeIdempotency       Code = "IDEMPOTENCY_KEY_REUSED"
	CodeRateLimit         Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal          Code = "INTERNAL_ERROR"
	CodeDependency        Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a code is rendered over HTTP.
type Metadata struct {
	HTTPStatus     int
	PublicMessage  string
	DetailsAllowed bool
}

type rendering struct {
	status  int
	public  string
	details bool
}

var renderings = map[Code]rendering{
	CodeValidation:        {http.StatusBadRequest, "Validation failed", true},
	CodeInsufficientStock: {http.StatusBadRequest, "Insufficient stock", true},
	CodeUnauthorized:      {http.StatusUnauthorized, "Authentication required", false},
	CodeNotFound:          {http.StatusNotFound, "Resource not found", false},
	CodeConflict:          {http.StatusConflict, "Conflict detected", false},
	CodeIdempotency:       {http.StatusConflict, "Idempotency key reused", true},
	CodeRateLimit:         {http.StatusTooManyRequests, "Too many requests", false},
	CodeInternal:          {http.StatusInternalServerError, "Internal server error", false},
	CodeDependency:        {http.StatusServiceUnavailable, "Dependency unavailable", true},
}

// MetadataFor falls back to CodeInternal for codes it does not know.
func MetadataFor(code Code) Metadata {
	r, ok := renderings[code]
	if !ok {
		r = renderings[CodeInternal]
	}
	return Metadata{HTTPStatus: r.status, PublicMessage: r.public, DetailsAllowed: r.details}
}

// Error is a coded application error. The message is shown to clients for
// 4xx codes; the cause only reaches logs.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails attaches a client-visible payload, such as per-field
// validation messages.
func (e *Error) WithDetails(details any) *Error {
	if e != nil {
		e.details = details
	}
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(string(e.code))
	b.WriteString(": ")
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As returns the outermost *Error in err's chain, or nil.
func As(err error) *Error {
	var typed *Error
	if err != nil && stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

func HasCode(err error, code Code) bool {
	return As(err).codeIs(code)
}

func (e *Error) codeIs(code Code) bool {
	return e != nil && e.code == code
}
