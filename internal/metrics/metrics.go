// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIAuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_auth_failures_total",
			Help: "Total number of webhook calls rejected for bad credentials",
		},
	)

	// Notification Metrics
	RFIDNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfid_notifications_total",
			Help: "Total number of RFID notifications by kind and resolution outcome",
		},
		[]string{"kind", "outcome"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of registered WebSocket sessions",
		},
	)

	WSBroadcasts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_broadcasts_total",
			Help: "Total number of broadcasts by command type",
		},
		[]string{"command"},
	)

	WSDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_deliveries_total",
			Help: "Total number of per-session delivery attempts by result",
		},
		[]string{"result"}, // "delivered", "closed", "buffer_full", "panic"
	)

	WSEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_evictions_total",
			Help: "Total number of sessions evicted as slow consumers",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordAuthFailure records a webhook call rejected by the shared secret check.
func RecordAuthFailure() {
	APIAuthFailures.Inc()
}

// RecordNotification records one webhook notification and how it was resolved.
func RecordNotification(kind, outcome string) {
	RFIDNotificationsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordBroadcast records a broadcast of the given command type.
func RecordBroadcast(command string) {
	WSBroadcasts.WithLabelValues(command).Inc()
}

// RecordDelivery records a single per-session delivery attempt.
func RecordDelivery(result string) {
	WSDeliveries.WithLabelValues(result).Inc()
}

// RecordEviction records a slow consumer being dropped.
func RecordEviction() {
	WSEvictions.Inc()
}

// RecordWSError records a WebSocket transport error.
func RecordWSError(errorType string) {
	WSErrors.WithLabelValues(errorType).Inc()
}

// SetWSConnections sets the registered session gauge.
func SetWSConnections(count int) {
	WSConnections.Set(float64(count))
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
