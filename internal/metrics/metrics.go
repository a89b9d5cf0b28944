// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the osphor server.
// Collectors are package-level so any layer can record into them; they are
// exposed only after RegisterMetrics has been called with a registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Store write outcomes.
const (
	WriteCommitted = "committed"
	WriteConflict  = "conflict"
	WriteRetried   = "retried"
	WriteExhausted = "exhausted"
)

// Session validation outcomes.
const (
	SessionValid   = "valid"
	SessionExpired = "expired"
	SessionInvalid = "invalid"
)

// HTTPRequests counts served requests.
var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "osphor_http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "route", "status"},
)

// HTTPDuration observes request latency.
var HTTPDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "osphor_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// StoreWrites counts write transaction attempts by outcome.
var StoreWrites = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "osphor_store_writes_total",
		Help: "Total number of store write transaction attempts by outcome",
	},
	[]string{"outcome"},
)

// PasswordHashDuration observes the time spent in the password KDF,
// including the wait for a free hashing worker.
var PasswordHashDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "osphor_password_hash_duration_seconds",
		Help:    "Password hashing duration in seconds",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)

// SessionsIssued counts signed session tokens.
var SessionsIssued = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "osphor_sessions_issued_total",
		Help: "Total number of issued session tokens",
	},
)

// SessionValidations counts token verifications by outcome.
var SessionValidations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "osphor_session_validations_total",
		Help: "Total number of session token validations by outcome",
	},
	[]string{"outcome"},
)

// RegisterMetrics registers every collector with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequests,
		HTTPDuration,
		StoreWrites,
		PasswordHashDuration,
		SessionsIssued,
		SessionValidations,
	)
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordStoreWrite records one write attempt outcome (use Write* constants).
func RecordStoreWrite(outcome string) {
	StoreWrites.WithLabelValues(outcome).Inc()
}

// RecordPasswordHash records one password hashing duration.
func RecordPasswordHash(duration time.Duration) {
	PasswordHashDuration.Observe(duration.Seconds())
}

// RecordSessionIssued increments the issued session counter.
func RecordSessionIssued() {
	SessionsIssued.Inc()
}

// RecordSessionValidation records one validation outcome (use Session* constants).
func RecordSessionValidation(outcome string) {
	SessionValidations.WithLabelValues(outcome).Inc()
}
