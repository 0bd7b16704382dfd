// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package config loads FileLens configuration with Koanf v2.

Sources, lowest to highest priority:

 1. Built-in defaults (defaultConfig)
 2. YAML file: --config flag, CONFIG_PATH, or filelens.yaml in the working directory
 3. Environment variables

# Environment Variables

Backend:
  - BACKEND_URL: analysis service base URL (default: http://localhost:8001)
  - BACKEND_TIMEOUT: per-request timeout (default: 30s)
  - BREAKER_ENABLED: wrap backend calls in a circuit breaker (default: false)
  - BREAKER_FAILURE_THRESHOLD, BREAKER_TIMEOUT, BREAKER_INTERVAL, BREAKER_MAX_REQUESTS

Controller:
  - FILELENS_ORDERING: last-write-wins (default) or latest-issued

Server (filelens serve):
  - HTTP_HOST, HTTP_PORT (default: 127.0.0.1:8787)
  - CORS_ORIGINS: comma-separated list
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT (json|console), LOG_CALLER

# Example File

	backend:
	  url: https://lens.example.com
	  timeout: 15s
	  breaker:
	    enabled: true
	controller:
	  ordering: latest-issued
	server:
	  port: 9000
	  cors_origins: ["http://localhost:3000"]

# Validation

Struct tags are checked with go-playground/validator through the validation
package, followed by URL, CORS and logging checks. Load returns the first
failure wrapped with "configuration validation failed".
*/
package config
