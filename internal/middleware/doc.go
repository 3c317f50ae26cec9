// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

/*
Package middleware provides handler-level HTTP middleware for the relay.

Both middlewares use the func(http.HandlerFunc) http.HandlerFunc shape and are
adapted onto chi route groups by the api package.

Key Components:

  - PrometheusMetrics: request count, latency histogram and in-flight gauge,
    labelled by method, chi route pattern and status code
  - BearerAuth: shared-secret check of the Authorization header for the
    webhook endpoint, disabled when no secret is configured

Stack on the webhook route:

	r.Group(func(r chi.Router) {
	    r.Use(chiMw.APISecurityHeaders())
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Use(chiMiddleware(middleware.BearerAuth(cfg.Security.WebhookSecret)))
	    r.Post("/api/rfidnotifications", h.RFIDNotification)
	})

PrometheusMetrics must not wrap WebSocket upgrade routes: its response writer
does not implement http.Hijacker.

Thread Safety:

All middleware is safe for concurrent use.
*/
package middleware
