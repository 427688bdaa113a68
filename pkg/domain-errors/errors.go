// Package dErrors provides coded domain errors so services can signal
// failure categories without knowing how the transport layer renders them.
package dErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure category shared across layers.
type Code string

const (
	// CodeBadRequest covers malformed caller input outside request bodies,
	// e.g. an unparseable date bound in a query filter.
	CodeBadRequest Code = "bad_request"
	// CodeValidation covers request bodies that decode but violate the
	// field schema.
	CodeValidation Code = "validation"
	// CodeNotFound covers lookups and filters that match nothing where the
	// domain convention demands an error.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized covers missing or unknown API keys.
	CodeUnauthorized Code = "unauthorized"
	// CodeCorruptData covers persisted collections that fail to decode.
	// A missing file is not corrupt; it triggers generation instead.
	CodeCorruptData Code = "corrupt_data"
	// CodeInternal is the fallback for unexpected failures.
	CodeInternal Code = "internal"
)

// DomainError carries a code and a caller-facing message. The wrapped cause,
// when present, is for logs only and never leaves the process.
type DomainError struct {
	Code    Code
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.cause }

// New builds a DomainError with the given code and message.
func New(code Code, message string) error {
	return &DomainError{Code: code, Message: message}
}

// Newf builds a DomainError with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) error {
	return &DomainError{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in a domain layer.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-facing message from err. Non-domain errors
// yield a generic message so internals do not leak to clients.
func MessageOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal server error"
}

// ToHTTPStatus maps a code to the HTTP status the transport layer writes.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeCorruptData, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
