// Package apperr defines the error taxonomy shared by handlers and
// services. Every error that crosses the service boundary is either an
// *Error with an HTTP status, or an unknown error that handlers treat
// as internal.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation marks client-fixable input problems (400).
func Validation(msg string) *Error {
	return &Error{Code: "validation", Status: http.StatusBadRequest, Message: msg}
}

// Unauthenticated covers missing/invalid tokens and failed credentials (401).
// The message is always generic; detail stays in server logs.
func Unauthenticated(msg string) *Error {
	return &Error{Code: "unauthenticated", Status: http.StatusUnauthorized, Message: msg}
}

// NotFound covers owned-resource lookup misses (404).
func NotFound(msg string) *Error {
	return &Error{Code: "not_found", Status: http.StatusNotFound, Message: msg}
}

// Duplicate marks uniqueness-constraint conflicts (400).
func Duplicate(msg string) *Error {
	return &Error{Code: "duplicate", Status: http.StatusBadRequest, Message: msg}
}

// StoreUnavailable wraps database failures (500).
func StoreUnavailable(err error) *Error {
	return &Error{Code: "store_unavailable", Status: http.StatusInternalServerError, Message: "service temporarily unavailable", Err: err}
}

// Internal is the catch-all (500).
func Internal(err error) *Error {
	return &Error{Code: "internal", Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}

// StatusOf maps any error to the HTTP status a handler should return.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message for an error. Unknown errors
// get a generic message so internals never leak to the client.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
