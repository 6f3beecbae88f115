package pwned

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrEmptyResult is returned when a read expected a record and the
	// service answered with null.
	ErrEmptyResult = crerr.New("pwned: empty result")
	// ErrServiceUnavailable is returned while the circuit breaker is open.
	ErrServiceUnavailable = crerr.New("pwned: service temporarily unavailable")
	// ErrMissingID is returned when an operation addresses a record by a
	// server id the record does not carry.
	ErrMissingID = crerr.New("pwned: record has no id")
)

// TransportError is a failure of the connection before any response body
// was read.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pwned: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidResponseError is a response body that is not JSON.
type InvalidResponseError struct {
	StatusCode int
	Raw        []byte
	Err        error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("pwned: invalid JSON returned from server (status=%d body=%s)", e.StatusCode, abbreviateBody(e.Raw))
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// APIError is an error reported by the service in the response envelope.
type APIError struct {
	StatusCode int
	Reason     string
	Raw        []byte
}

func (e *APIError) Error() string {
	return "pwned: " + e.Reason
}

// UnknownTypeError is returned by Client.Get for a kind outside the
// competitions the service exposes.
type UnknownTypeError struct {
	Kind string
}

func (e *UnknownTypeError) Error() string {
	return "pwned: unknown type for get: " + e.Kind
}

func IsAPIError(err error) bool {
	var apiErr *APIError
	return crerr.As(err, &apiErr)
}
