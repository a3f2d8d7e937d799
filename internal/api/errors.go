package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// The kinds of failures of a [Caller].
var (
	// ErrConnection means the registrar could not be reached or the connection broke.
	ErrConnection = errors.New("connection error")
	// ErrTimeout means the client stopped waiting.
	ErrTimeout = errors.New("timeout")
	// ErrRequest means any other failure, including undecodable responses.
	ErrRequest = errors.New("request error")
	// ErrAuthentication means the registrar rejected the credentials.
	// The transport never returns it; it is for the layers interpreting result codes.
	ErrAuthentication = errors.New("authentication error")
)

// Error is a failed command. Both Kind and Err are visible to [errors.Is] and [errors.As].
type Error struct {
	Kind    error
	Command string
	Err     error
}

// NewError wraps the cause of a failed command.
func NewError(kind error, command string, err error) *Error {
	return &Error{Kind: kind, Command: command, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Command, e.Kind, e.Err)
}

// Unwrap returns the kind and the cause.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// StatusError is a non-2xx HTTP status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected HTTP status " + e.Status
}

// Classify gives the kind of a transport failure.
func Classify(err error) error {
	var netErr net.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return ErrTimeout

	case errors.As(err, &dnsErr),
		errors.As(err, &opErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return ErrConnection

	default:
		return ErrRequest
	}
}
