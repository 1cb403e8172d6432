package transport

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport signals a failed HTTP round-trip (connection refused,
	// timeout, cancelled context).
	ErrTransport = errors.New("transport failure")
	// ErrEncode signals a request payload that could not be serialized.
	ErrEncode = errors.New("encode request payload")
	// ErrDecode signals a response body that could not be deserialized.
	ErrDecode = errors.New("decode response body")
	// ErrRemote signals a non-2xx response from the service.
	ErrRemote = errors.New("remote error")
	// ErrNotFound signals a 404 from the service.
	ErrNotFound = errors.New("not found")
)

// RemoteError carries the status and endpoint of a non-2xx response.
// It matches ErrRemote via errors.Is, and additionally ErrNotFound
// when the status is 404.
type RemoteError struct {
	StatusCode int
	Method     string
	Endpoint   string
	Message    string // response body excerpt, may be empty
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Endpoint, e.StatusCode)
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
