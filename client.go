package textdex

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kailas-cloud/textdex/internal/transport"
	"github.com/kailas-cloud/textdex/internal/version"
)

const defaultTimeout = 10 * time.Second

// Client is the textdex SDK entry point. It is immutable after New and
// safe for concurrent use when the underlying HTTP client is.
type Client struct {
	tmpl *transport.Template
	obs  *observer
}

// New creates a textdex Client bound to the service base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	factory, err := transport.NewFactory(baseURL, cfg.apiKey, "textdex-go/"+version.Version)
	if err != nil {
		return nil, fmt.Errorf("textdex: %w", err)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		tmpl: transport.NewTemplate(factory, httpClient),
		obs:  obs,
	}, nil
}

// Index returns the document and search operations for one index.
// The index name is used verbatim in request paths.
func (c *Client) Index(name string) *Index {
	return &Index{name: name, tmpl: c.tmpl, obs: c.obs}
}

// Health checks service availability.
func (c *Client) Health(ctx context.Context) (_ HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	var status HealthStatus
	err = c.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/health",
	}, &status)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health: %w", err)
	}
	return status, nil
}

// Version retrieves the service build metadata.
func (c *Client) Version(ctx context.Context) (_ Version, err error) {
	start := time.Now()
	defer func() { c.obs.observe("version", start, err) }()

	var v Version
	err = c.tmpl.Execute(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/version",
	}, &v)
	if err != nil {
		return Version{}, fmt.Errorf("version: %w", err)
	}
	return v, nil
}
