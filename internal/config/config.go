// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package config

import (
	"fmt"
	"strings"
	"time"
)

// Ordering policies for applying analysis responses.
const (
	// OrderingLastWriteWins applies whichever response arrives last.
	OrderingLastWriteWins = "last-write-wins"

	// OrderingLatestIssued applies a response only if it belongs to the most
	// recently issued request.
	OrderingLatestIssued = "latest-issued"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2, highest priority last):
//  1. Defaults from defaultConfig()
//  2. Optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment variables (see envMappings)
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Backend    BackendConfig    `koanf:"backend"`
	Controller ControllerConfig `koanf:"controller"`
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// BackendConfig describes the remote analysis service.
type BackendConfig struct {
	// URL is the base URL; /api/analyze-file and /api/stats are resolved against it.
	URL string `koanf:"url" validate:"required"`

	// Timeout bounds each backend round trip.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the optional circuit breaker around backend calls.
// Disabled by default so every submission makes exactly one round trip.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval         time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout          time.Duration `koanf:"timeout" validate:"gt=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"gte=1"`
}

// ControllerConfig configures the analysis state machine.
type ControllerConfig struct {
	Ordering string `koanf:"ordering" validate:"oneof=last-write-wins latest-issued"`
}

// ServerConfig configures the local web front end started by `filelens serve`.
type ServerConfig struct {
	Host             string        `koanf:"host"`
	Port             int           `koanf:"port" validate:"gte=1,lte=65535"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins      []string      `koanf:"cors_origins"`
	RateLimitReqs    int           `koanf:"rate_limit_requests" validate:"gte=1"`
	RateLimitWindow  time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	DisableRateLimit bool          `koanf:"disable_rate_limit"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AnalyzeURL returns the analysis endpoint without the query string.
func (b BackendConfig) AnalyzeURL() string {
	return strings.TrimRight(b.URL, "/") + "/api/analyze-file"
}

// StatsURL returns the statistics endpoint.
func (b BackendConfig) StatsURL() string {
	return strings.TrimRight(b.URL, "/") + "/api/stats"
}

// Load reads configuration from defaults, an optional file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
