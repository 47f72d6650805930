package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnexpected  = errors.New("an unexpected error occurred")
	ErrUnreachable = errors.New("could not reach the server")
)

type Kind string

const (
	// KindTransport covers network failures and non-2xx responses.
	KindTransport Kind = "transport"
	// KindRejected means the envelope arrived with success=false.
	KindRejected Kind = "rejected"
	// KindDecode means the result did not match the expected shape.
	KindDecode Kind = "decode"
)

// Error is returned for every failed API call.
type Error struct {
	Kind   Kind
	Method string
	Path   string
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.sentinel())
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Err}
}

// sentinel mirrors what the user is told: a 400 or an explicit rejection is
// unexpected, anything else means the server could not be reached.
func (e *Error) sentinel() error {
	switch {
	case e.Kind == KindRejected, e.Kind == KindDecode:
		return ErrUnexpected
	case e.Status == http.StatusBadRequest:
		return ErrUnexpected
	default:
		return ErrUnreachable
	}
}

// ErrorKind maps errors to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	if errors.Is(err, ErrUnreachable) {
		return string(KindTransport)
	}
	return "unexpected"
}

func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindTransport
}
