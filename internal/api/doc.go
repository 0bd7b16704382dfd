// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package api serves the local web front end for `filelens serve`.

Routes (chi):

	GET  /api/v1/health    liveness, websocket client count, stats loaded flag
	GET  /api/v1/state     current UI state with classification
	POST /api/v1/submit    {"filename": "..."}; runs one analysis
	GET  /api/v1/stats     usage counters loaded at startup
	GET  /api/v1/commands  companion bot command listing
	GET  /api/v1/ws        websocket push of state and stats changes
	GET  /metrics          Prometheus exposition

Every JSON endpoint answers with the {success, data, error, meta} envelope.
Submit answers 400 for blank or oversized input, 409 while another analysis
is outstanding, and 200 with the resulting state otherwise. An analysis
failure is still a 200: the failure is part of the state.

Middleware: request ID with logging context, chi RealIP, access log, chi
Recoverer, go-chi/cors, Prometheus request metrics, and go-chi/httprate on
the submit route.
*/
package api
