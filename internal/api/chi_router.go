// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/rfidrelay/internal/config"
	"github.com/tomtom215/rfidrelay/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	webhookAuth    func(http.HandlerFunc) http.HandlerFunc
	debugBroadcast bool
}

// NewRouter creates a Router from the handler and application config.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:        handler,
		chiMiddleware:  NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security)),
		webhookAuth:    middleware.BearerAuth(cfg.Security.WebhookSecret),
		debugBroadcast: cfg.Debug.BroadcastEnabled,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())      // X-Request-ID with logging context
	r.Use(chimiddleware.RealIP)        // Honour X-Forwarded-For for remote addresses
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health
	// ========================
	r.With(router.chiMiddleware.RateLimitCustom(RateLimitHealth)).Get("/healthz", router.handler.Health)

	// ========================
	// RFID Webhook
	// ========================
	r.Group(func(r chi.Router) {
		// Never rate limited.
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.webhookAuth))

		r.Post("/api/rfidnotifications", router.handler.RFIDNotification)
	})

	// ========================
	// Operator Tooling
	// ========================
	if router.debugBroadcast {
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(APISecurityHeaders())
			r.Use(chiMiddleware(middleware.PrometheusMetrics))

			r.Post("/api/debug/broadcast", router.handler.DebugBroadcast)
		})
	}

	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// WebSocket
	// ========================
	// Not wrapped by PrometheusMetrics: the upgrade needs http.Hijacker.
	r.Get("/ws", router.handler.WebSocket)
	r.Get("/", router.handler.WebSocket)

	return r
}
