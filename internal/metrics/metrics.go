// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the analysis and stats counters.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeHTTPStatus = "http_status"
	OutcomeTransport  = "transport"
	OutcomeDecode     = "decode"
	OutcomeRejected   = "rejected"
	OutcomeBackendErr = "backend_error"
)

var (
	// Analysis Metrics
	AnalysisRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filelens_analysis_requests_total",
			Help: "Total number of analysis submissions by outcome",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filelens_analysis_duration_seconds",
			Help:    "Round trip time of analysis requests in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	AnalysisInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filelens_analysis_in_flight",
			Help: "Current number of outstanding analysis requests",
		},
	)

	StaleResponsesDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filelens_stale_responses_discarded_total",
			Help: "Total number of analysis responses dropped because a newer request was issued",
		},
	)

	// Stats Metrics
	StatsFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filelens_stats_fetch_total",
			Help: "Total number of stats fetches by outcome",
		},
		[]string{"outcome"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filelens_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filelens_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filelens_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filelens_websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filelens_websocket_messages_sent_total",
			Help: "Total number of WebSocket messages queued for clients",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "filelens_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filelens_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filelens_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAnalysis records the outcome and, for requests that reached the
// network, the duration of an analysis submission.
func RecordAnalysis(outcome string, duration time.Duration) {
	AnalysisRequestsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeValidation {
		AnalysisDuration.Observe(duration.Seconds())
	}
}

// TrackAnalysisInFlight adjusts the outstanding analysis gauge.
func TrackAnalysisInFlight(inc bool) {
	if inc {
		AnalysisInFlight.Inc()
	} else {
		AnalysisInFlight.Dec()
	}
}

// RecordStatsFetch records a stats fetch outcome.
func RecordStatsFetch(outcome string) {
	StatsFetchTotal.WithLabelValues(outcome).Inc()
}

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
