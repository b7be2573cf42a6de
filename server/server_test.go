package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := Config{}
	cfg.ApplyDefaults()
	return New(cfg, logger.NewDefault("test"))
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MaxBodySize != "10MB" {
		t.Errorf("MaxBodySize = %q, want 10MB", cfg.MaxBodySize)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("CORS.AllowedOrigins should default to allow-all")
	}
	if cfg.RateLimit.RequestsPerMinute != 0 {
		t.Errorf("RateLimit.RequestsPerMinute = %d, rate limiting should default off", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Port: 8000}, false},
		{"port too large", Config{Port: 70000}, true},
		{"negative read timeout", Config{Port: 8000, ReadTimeout: -1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDefaultEndpointsRegistered(t *testing.T) {
	srv := newTestServer(t)
	srv.RegisterDefaultEndpoints("voice-agent")

	for _, path := range []string{"/health", "/live", "/ready", "/info", "/version", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.GinEngine().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestHealthThroughMiddlewareStack(t *testing.T) {
	srv := newTestServer(t)
	srv.RegisterDefaultEndpoints("voice-agent")

	// Hit the full handler so the request passes through the
	// middleware chain and the h2c wrapper.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header from middleware stack")
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}

func TestHandleMountsAlongsideGin(t *testing.T) {
	srv := newTestServer(t)
	srv.Handle("/custom/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/custom/x", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}
