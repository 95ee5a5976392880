package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes raised at the service boundary. Concurrency is kept distinct
// from Conflict so a client can tell a lost optimistic-write race (safe to
// retry with fresh data) from a state that will not change on retry.
const (
	CodeNotFound    = "not_found"
	CodeConflict    = "conflict"
	CodeValidation  = "validation"
	CodeConcurrency = "concurrency"
)

// AppError is a typed service error with a taxonomy code and a
// human-readable message. Services raise it; handlers map it to HTTP.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NotFoundf(format string, args ...interface{}) error {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &AppError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...interface{}) error {
	return &AppError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Concurrencyf(format string, args ...interface{}) error {
	return &AppError{Code: CodeConcurrency, Message: fmt.Sprintf(format, args...)}
}

func errCode(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

func IsNotFound(err error) bool    { return errCode(err) == CodeNotFound }
func IsConflict(err error) bool    { return errCode(err) == CodeConflict }
func IsValidation(err error) bool  { return errCode(err) == CodeValidation }
func IsConcurrency(err error) bool { return errCode(err) == CodeConcurrency }

// HTTPStatus maps a service error to its HTTP status. Unknown errors are
// internal server errors.
func HTTPStatus(err error) int {
	switch errCode(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict, CodeConcurrency:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
