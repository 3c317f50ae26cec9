// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

/*
Package metrics provides Prometheus metrics for the relay.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP:
  - api_requests_total: requests by method, endpoint, status_code (counter)
  - api_request_duration_seconds: request latency by method, endpoint (histogram)
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: rate limit rejections by endpoint (counter)
  - api_auth_failures_total: rejected webhook credentials (counter)

Notifications:
  - rfid_notifications_total: webhook calls by kind and outcome (counter)
    kind: entrance, exit, unknown
    outcome: play, stop, ignored_unknown_kind, ignored_unmapped

WebSocket:
  - websocket_connections: registered sessions (gauge)
  - websocket_broadcasts_total: broadcasts by command type (counter)
  - websocket_deliveries_total: per-session delivery attempts by result (counter)
  - websocket_evictions_total: sessions evicted as slow consumers (counter)
  - websocket_errors_total: transport errors by error_type (counter)

System:
  - app_info: version and Go version (gauge, always 1)
  - app_uptime_seconds: seconds since start (gauge)

# Example Queries

Entrances that matched an exhibit over the last five minutes:

	sum(rate(rfid_notifications_total{outcome="play"}[5m]))

Delivery failure ratio:

	sum(rate(websocket_deliveries_total{result!="delivered"}[5m]))
	  / sum(rate(websocket_deliveries_total[5m]))
*/
package metrics
