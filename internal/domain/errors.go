package domain

import (
	"errors"
	"net/http"
)

// Error codes for domain conditions surfaced by repositories and services.
const (
	CodeNotFound      = 1
	CodeAlreadyExists = 2
	CodeValidation    = 3
	CodeInternal      = 4
)

// AppError carries a domain error code, a client-facing message, and an
// optional wrapped cause. Repositories return it instead of raw driver
// errors; handlers map the code to an HTTP status.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrNotFound is the generic not-found error for lookups that have no
// entity-specific message. Match by category with the Is* helpers, which
// compare codes via errors.As, rather than with errors.Is, so a freshly
// constructed *AppError carrying the same code is recognized too.
var ErrNotFound = &AppError{Code: CodeNotFound, Message: "data tidak ditemukan"}

// NewAppError creates an AppError with the given code, message, and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NotFound creates a not-found error with an entity-specific message,
// e.g. "Kelompok Nelayan tidak ditemukan".
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// AlreadyExists creates a duplicate natural-key error with an entity-specific
// message, e.g. "NIB Kelompok sudah terdaftar".
func AlreadyExists(message string) *AppError {
	return &AppError{Code: CodeAlreadyExists, Message: message}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists reports whether err is or wraps an AppError with CodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps a domain error to an HTTP status code. Anything that
// is not an *AppError is an unexpected internal failure.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeAlreadyExists:
			return http.StatusConflict
		case CodeValidation:
			return http.StatusBadRequest
		case CodeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
