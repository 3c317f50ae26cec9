// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

/*
Package api provides the HTTP surface of the relay.

Routes:

	GET  /healthz                 liveness, {"ok":true}
	POST /api/rfidnotifications   provider webhook, empty 200 on every well-formed call
	POST /api/debug/broadcast     operator-triggered broadcast (when enabled)
	GET  /metrics                 Prometheus exposition
	GET  /ws, GET /               WebSocket upgrade for displays

Middleware:

Every route passes through RequestIDWithLogging, chi RealIP, chi Recoverer
and go-chi/cors. The webhook group adds security headers, Prometheus
instrumentation and, when a shared secret is configured, bearer
authentication. It is never rate limited. go-chi/httprate per-IP limits
guard /healthz and the debug broadcast route.

Webhook bodies are capped at 1 MiB (413 beyond that). Only JSON content types
are parsed; other bodies are acknowledged as an empty payload. Unparseable
JSON is rejected with 400; any other body is passed to the relay service,
which decides whether a PLAY_EXHIBIT or STOP_EXHIBIT command goes out.

WebSocket upgrades from clients without an Origin header are accepted. Browser
origins must be on the CORS allow-list.
*/
package api
