// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package api

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/rfidrelay/internal/config"
	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/metrics"
)

func TestNewChiMiddlewareConfig(t *testing.T) {
	cfg := NewChiMiddlewareConfig(config.SecurityConfig{
		RateLimitReqs:     42,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://museum.example"},
	})

	if cfg.RateLimitRequests != 42 || cfg.RateLimitWindow != 30*time.Second || !cfg.RateLimitDisabled {
		t.Errorf("rate limit settings not copied: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://museum.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}

	empty := NewChiMiddlewareConfig(config.SecurityConfig{RateLimitReqs: 1, RateLimitWindow: time.Second})
	if len(empty.CORSAllowedOrigins) != 1 || empty.CORSAllowedOrigins[0] != "*" {
		t.Errorf("empty origins should fall back to wildcard, got %v", empty.CORSAllowedOrigins)
	}
}

func TestNewChiMiddleware_NilConfig(t *testing.T) {
	m := NewChiMiddleware(nil)
	if m.config.RateLimitRequests != 30 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("default config = %+v", m.config)
	}
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("limits after threshold", func(t *testing.T) {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitRequests = 3
		handler := NewChiMiddleware(cfg).RateLimit()(ok)

		before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/limited"))

		codes := make([]int, 0, 5)
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodPost, "/limited", nil)
			req.RemoteAddr = "192.0.2.10:5000"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}

		want := []int{200, 200, 200, 429, 429}
		for i := range want {
			if codes[i] != want[i] {
				t.Fatalf("status codes = %v, want %v", codes, want)
			}
		}
		if got := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/limited")) - before; got != 2 {
			t.Errorf("rate limit hits delta = %v, want 2", got)
		}
	})

	t.Run("keys by client ip", func(t *testing.T) {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitRequests = 1
		handler := NewChiMiddleware(cfg).RateLimit()(ok)

		for _, addr := range []string{"192.0.2.1:1", "192.0.2.2:1", "192.0.2.3:1"} {
			req := httptest.NewRequest(http.MethodPost, "/per-ip", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("%s: status = %d, want 200", addr, rec.Code)
			}
		}
	})

	t.Run("disabled is a no-op", func(t *testing.T) {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitRequests = 1
		cfg.RateLimitDisabled = true
		m := NewChiMiddleware(cfg)

		for _, mw := range []func(http.Handler) http.Handler{m.RateLimit(), m.RateLimitCustom(RateLimitHealth)} {
			handler := mw(ok)
			for i := 0; i < 5; i++ {
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/off", nil))
				if rec.Code != http.StatusOK {
					t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
				}
			}
		}
	})
}

func TestCORS(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://museum.example"}
	handler := NewChiMiddleware(cfg).CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/debug/broadcast", nil)
	req.Header.Set("Origin", "https://museum.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://museum.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin got Access-Control-Allow-Origin = %q", got)
	}
}

func TestRequestIDWithLogging(t *testing.T) {
	var ctxRequestID, ctxCorrelationID string
	handler := RequestIDWithLogging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = logging.RequestIDFromContext(r.Context())
		ctxCorrelationID = logging.CorrelationIDFromContext(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if ctxRequestID == "" {
			t.Fatal("request ID missing from context")
		}
		if got := rec.Header().Get("X-Request-Id"); got != ctxRequestID {
			t.Errorf("response header = %q, context = %q", got, ctxRequestID)
		}
		if ctxCorrelationID == "" {
			t.Error("correlation ID missing from context")
		}
	})

	t.Run("reuses inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "upstream-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if ctxRequestID != "upstream-123" {
			t.Errorf("request ID = %q, want upstream-123", ctxRequestID)
		}
	})
}

func TestAPISecurityHeaders(t *testing.T) {
	handler := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	tests := []struct {
		name     string
		tls      bool
		proto    string
		wantHSTS bool
	}{
		{"plain http", false, "", false},
		{"tls", true, "", true},
		{"behind tls proxy", false, "https", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/rfidnotifications", nil)
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			}
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("missing nosniff")
			}
			if rec.Header().Get("X-Frame-Options") != "DENY" {
				t.Error("missing X-Frame-Options")
			}
			if got := rec.Header().Get("Strict-Transport-Security") != ""; got != tt.wantHSTS {
				t.Errorf("HSTS present = %v, want %v", got, tt.wantHSTS)
			}
		})
	}
}
