package textdex

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// recordedRequest captures what the SDK actually sent over the wire.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
	Header   http.Header
}

// recorder stores every request passing through the mock service.
type recorder struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (rec *recorder) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		rec.mu.Lock()
		rec.reqs = append(rec.reqs, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Body:     body,
			Header:   r.Header.Clone(),
		})
		rec.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.reqs)
}

func (rec *recorder) at(t *testing.T, i int) recordedRequest {
	t.Helper()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if i >= len(rec.reqs) {
		t.Fatalf("request %d not recorded (have %d)", i, len(rec.reqs))
	}
	return rec.reqs[i]
}

func (rec *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.reqs) == 0 {
		t.Fatal("no requests recorded")
	}
	return rec.reqs[len(rec.reqs)-1]
}

// jsonHandler responds with v serialized as JSON.
func jsonHandler(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

// newTestClient starts a chi-routed mock service and binds a Client to it.
func newTestClient(t *testing.T, route func(r chi.Router), opts ...Option) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	r := chi.NewRouter()
	r.Use(rec.middleware)
	if route != nil {
		route(r)
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, rec
}

// newTestIndex is newTestClient plus an index handle for "movies".
func newTestIndex(t *testing.T, route func(r chi.Router)) (*Index, *recorder) {
	t.Helper()
	client, rec := newTestClient(t, route)
	return client.Index("movies"), rec
}

// testUpdate is the canonical write receipt returned by mock routes.
var testUpdate = Update{
	UpdateID: 7,
	Status:   UpdateEnqueued,
	Type:     UpdateType{Name: "DocumentsAddition"},
}
