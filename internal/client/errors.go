package client

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBody     = errors.New("response body missing")
	ErrUnparseableBody = errors.New("response body unparseable")
)

// TransportError means no response reached the client: DNS, connect and
// timeout failures, or a request that could not be dispatched at all.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ServerError means a response arrived but reports failure: a status outside
// 2xx, or a 2xx whose expected body is missing or unparseable.
type ServerError struct {
	Op         string
	StatusCode int
	// Message is derived from the response body when there is one.
	Message string
	Cause   error
}

func (e *ServerError) Error() string {
	msg := fmt.Sprintf("%s: server failure: status %d", e.Op, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ServerError) Unwrap() error {
	return e.Cause
}

func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

func IsServer(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr)
}

// StatusCode returns the status carried by a ServerError, or 0.
func StatusCode(err error) int {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.StatusCode
	}
	return 0
}
