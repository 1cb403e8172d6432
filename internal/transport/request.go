package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Request is an abstract descriptor of a single service call.
// Path segments are used verbatim: callers supply URL-safe index names
// and document identifiers.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte // nil means no body
}

// Factory turns request descriptors into concrete http.Requests
// bound to one service endpoint.
type Factory struct {
	baseURL   *url.URL
	apiKey    string
	userAgent string
}

// NewFactory parses the base URL and returns a request factory.
// A trailing slash on the base URL is ignored.
func NewFactory(baseURL, apiKey, userAgent string) (*Factory, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host required", baseURL)
	}
	return &Factory{baseURL: u, apiKey: apiKey, userAgent: userAgent}, nil
}

// Build constructs the http.Request for a descriptor. Every request
// carries a fresh X-Request-Id so server-side logs can be correlated
// with client operations.
func (f *Factory) Build(ctx context.Context, req Request) (*http.Request, error) {
	u := *f.baseURL
	u.Path += req.Path
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body *bytes.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	} else {
		body = bytes.NewReader(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", req.Method, req.Path, err)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if f.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+f.apiKey)
	}
	if f.userAgent != "" {
		httpReq.Header.Set("User-Agent", f.userAgent)
	}
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	return httpReq, nil
}
