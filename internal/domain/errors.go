package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error so callers (and the gRPC adapter)
// can react without matching on message text.
type ErrorKind string

const (
	KindValidation    ErrorKind = "VALIDATION"
	KindState         ErrorKind = "STATE"
	KindAuthorization ErrorKind = "AUTHORIZATION"
	KindIntegrity     ErrorKind = "INTEGRITY"
	KindConcurrency   ErrorKind = "CONCURRENCY"
	KindTemporal      ErrorKind = "TEMPORAL"
	KindNotFound      ErrorKind = "NOT_FOUND"
)

// Error is a structured (kind, message) domain error. Every operation that
// fails with an Error must leave persisted state unchanged.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// E builds a domain error of the given kind.
func E(kind ErrorKind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Ef builds a domain error with a formatted message.
func Ef(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" if err carries no domain Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
