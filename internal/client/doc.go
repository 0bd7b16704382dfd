// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package client is the HTTP client for the remote filename analysis service.

Endpoints:

	GET <backend>/api/analyze-file?filename=<escaped>   -> models.AnalysisResult
	GET <backend>/api/stats                             -> models.Stats

Any non-2xx status is a *StatusError carrying up to 64KB of the body. A 2xx
body that does not decode is wrapped in ErrDecode. Transport failures are
wrapped as-is, so errors.Is(err, context.DeadlineExceeded) works.

CircuitBreakerClient adds sony/gobreaker in front of the same calls. It is
off by default; NewFromConfig picks the right implementation.
*/
package client
