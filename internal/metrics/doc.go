// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package metrics provides Prometheus instrumentation for FileLens.

Collectors are registered on the default registry through promauto and
exposed at /metrics by the serve command:

	curl http://localhost:8787/metrics

# Available Metrics

Analysis:
  - filelens_analysis_requests_total{outcome}
  - filelens_analysis_duration_seconds
  - filelens_analysis_in_flight
  - filelens_stale_responses_discarded_total

Stats:
  - filelens_stats_fetch_total{outcome}

API:
  - filelens_api_requests_total{method,endpoint,status_code}
  - filelens_api_request_duration_seconds{method,endpoint}
  - filelens_api_active_requests

WebSocket:
  - filelens_websocket_connections
  - filelens_websocket_messages_sent_total

Circuit breaker:
  - filelens_circuit_breaker_state{name}
  - filelens_circuit_breaker_requests_total{name,result}
  - filelens_circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
