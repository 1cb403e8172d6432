package transport

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
)

func TestNewFactory_InvalidBaseURL(t *testing.T) {
	cases := []string{"", "localhost:7700", "://bad", "/relative"}
	for _, baseURL := range cases {
		t.Run(baseURL, func(t *testing.T) {
			if _, err := NewFactory(baseURL, "", ""); err == nil {
				t.Fatalf("expected error for base url %q", baseURL)
			}
		})
	}
}

func TestFactory_Build_URL(t *testing.T) {
	f, err := NewFactory("http://localhost:7700/", "", "")
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	req, err := f.Build(context.Background(), Request{
		Method: "GET",
		Path:   "/indexes/movies/documents",
		Query:  url.Values{"limit": []string{"5"}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := "http://localhost:7700/indexes/movies/documents?limit=5"
	if req.URL.String() != want {
		t.Errorf("url = %q, want %q", req.URL.String(), want)
	}
}

func TestFactory_Build_Headers(t *testing.T) {
	f, err := NewFactory("http://localhost:7700", "secret", "textdex-go/test")
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	req, err := f.Build(context.Background(), Request{
		Method: "POST",
		Path:   "/indexes/movies/search",
		Body:   []byte(`{"q":"carol"}`),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := req.Header.Get("Authorization"); got != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", got)
	}
	if got := req.Header.Get("User-Agent"); got != "textdex-go/test" {
		t.Errorf("User-Agent = %q, want textdex-go/test", got)
	}
	if _, err := uuid.Parse(req.Header.Get("X-Request-Id")); err != nil {
		t.Errorf("X-Request-Id is not a uuid: %v", err)
	}
}

func TestFactory_Build_NoBodyNoAuth(t *testing.T) {
	f, err := NewFactory("http://localhost:7700", "", "")
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	req, err := f.Build(context.Background(), Request{Method: "GET", Path: "/health"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := req.Header.Get("Content-Type"); got != "" {
		t.Errorf("Content-Type = %q, want empty", got)
	}
	if got := req.Header.Get("Authorization"); got != "" {
		t.Errorf("Authorization = %q, want empty", got)
	}
}
