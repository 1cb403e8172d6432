package textdex

import "github.com/kailas-cloud/textdex/internal/transport"

// Sentinel errors re-exported from the transport layer.
// Use errors.Is() to check.
var (
	// ErrTransport matches failed HTTP round-trips.
	ErrTransport = transport.ErrTransport
	// ErrEncode matches request payloads that could not be serialized.
	ErrEncode = transport.ErrEncode
	// ErrDecode matches response bodies that could not be deserialized.
	ErrDecode = transport.ErrDecode
	// ErrRemote matches any non-2xx response from the service.
	ErrRemote = transport.ErrRemote
	// ErrNotFound matches 404 responses. A 404 also matches ErrRemote.
	ErrNotFound = transport.ErrNotFound
)

// RemoteError is the detailed form of ErrRemote. Retrieve it with
// errors.As to inspect the status code and endpoint.
type RemoteError = transport.RemoteError
