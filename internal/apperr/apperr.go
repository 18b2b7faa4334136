// Package apperr defines the closed set of error kinds the API can
// produce. Services tag every failure with exactly one Kind; the HTTP
// layer maps each Kind to a single status code, so adding a new failure
// class means adding a Kind here first.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind is the failure class carried by an Error.
type Kind uint8

const (
	KindValidation    Kind = iota + 1 // malformed or rejected input
	KindAuth                          // missing, invalid, or mismatched credentials
	KindNotFound                      // requested entity does not exist
	KindMisconfigured                 // server-side configuration is unusable
	KindStore                         // persistence layer failure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindMisconfigured:
		return "misconfigured"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// HTTPStatus returns the status code the API contract pins to the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusForbidden
	case KindNotFound:
		// Legacy contract: unknown hashes and taken usernames answer 411.
		return http.StatusLengthRequired
	case KindMisconfigured:
		return http.StatusInternalServerError
	case KindStore:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Error is a tagged error with a user-facing message and an optional
// wrapped cause. Msg is what the client sees; Err stays in the logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a tagged error without an underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap tags err while keeping it reachable through errors.Is/As.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
