// Package transport executes abstract request descriptors against the
// textdex HTTP API and maps responses into caller-supplied shapes.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response body is kept
// for diagnostics.
const maxErrorBody = 512

// Doer performs a single HTTP round-trip. *http.Client satisfies it;
// tests substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Template executes request descriptors: build, send, classify the
// failure or decode the body into the target.
type Template struct {
	factory *Factory
	client  Doer
}

// NewTemplate wires a factory and an HTTP client into a template.
func NewTemplate(factory *Factory, client Doer) *Template {
	return &Template{factory: factory, client: client}
}

// Execute sends the request and decodes the JSON response into out.
// Pass a nil out to discard the body. Failures are classified:
// ErrTransport for round-trip errors, ErrRemote (and ErrNotFound on
// 404) for non-2xx statuses, ErrDecode for unmarshalling errors.
func (t *Template) Execute(ctx context.Context, req Request, out any) error {
	httpReq, err := t.factory.Build(ctx, req)
	if err != nil {
		return err
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.Path, ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &RemoteError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			Endpoint:   req.Path,
			Message:    readErrorBody(resp.Body),
		}
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.Path, ErrTransport, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.Path, ErrDecode, err)
	}
	return nil
}

// Encode serializes a request payload, classifying failures as ErrEncode.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
