package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidBaseURL(t *testing.T) {
	cases := []string{"", "localhost:7700", "not a url", "/relative/path"}
	for _, baseURL := range cases {
		t.Run("base_url="+baseURL, func(t *testing.T) {
			cfg := Config{Service: ServiceConfig{BaseURL: baseURL}}
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected error for base_url %q", baseURL)
			}
		})
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Config{
		Service: ServiceConfig{BaseURL: "http://localhost:7700"},
		Logging: LoggingConfig{Level: "verbose"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}

	expected := `logging.level must be debug, info, warn or error, got "verbose"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	validLevels := []string{"", "debug", "info", "warn", "error"}

	for _, level := range validLevels {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{
				Service: ServiceConfig{BaseURL: "https://search.example.com"},
				Logging: LoggingConfig{Level: level},
			}

			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid level %q: %v", level, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Service.BaseURL != "http://localhost:7700" {
		t.Errorf("expected BaseURL=http://localhost:7700, got %q", cfg.Service.BaseURL)
	}
	if cfg.Service.TimeoutSec != 10 {
		t.Errorf("expected TimeoutSec=10, got %d", cfg.Service.TimeoutSec)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		Service: ServiceConfig{BaseURL: "https://search.example.com", TimeoutSec: 30},
	}
	cfg.ApplyDefaults()

	if cfg.Service.BaseURL != "https://search.example.com" {
		t.Errorf("expected BaseURL unchanged, got %q", cfg.Service.BaseURL)
	}
	if cfg.Service.TimeoutSec != 30 {
		t.Errorf("expected TimeoutSec=30, got %d", cfg.Service.TimeoutSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("TEXTDEX_TEST_KEY", "secret")
	defer os.Unsetenv("TEXTDEX_TEST_KEY")

	in := []byte("api_key: ${TEXTDEX_TEST_KEY}\nbase_url: ${TEXTDEX_TEST_URL:-http://localhost:7700}")
	out := string(expandEnvVars(in))

	if out != "api_key: secret\nbase_url: http://localhost:7700" {
		t.Errorf("unexpected expansion: %q", out)
	}
}
