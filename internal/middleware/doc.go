// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package middleware provides chi-compatible HTTP middleware for the local web
front end.

Key Components:

  - RequestID: UUID-based request tracking, also placed in the logging context
  - AccessLog: one zerolog line per request
  - PrometheusMetrics: request count, duration and active request gauge

Middleware Stack:

The router installs them as:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

CORS and rate limiting come from go-chi/cors and go-chi/httprate and are set
up in the api package.

Thread Safety:

All middleware is stateless apart from the Prometheus collectors, which are
safe for concurrent use.
*/
package middleware
