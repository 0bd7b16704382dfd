// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/filelens/internal/logging"
	"github.com/tomtom215/filelens/internal/validation"
)

// Validate checks struct tags first, then the rules tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateBackend(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateBackend validates the backend base URL
func (c *Config) validateBackend() error {
	return validateHTTPURL(c.Backend.URL, "BACKEND_URL")
}

// validateCORS rejects a wildcard mixed with explicit origins
func (c *Config) validateCORS() error {
	if len(c.Server.CORSOrigins) < 2 {
		return nil
	}
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS cannot combine '*' with explicit origins")
		}
	}
	return nil
}

// HasWildcardCORS reports whether every origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	return len(c.Server.CORSOrigins) == 1 && c.Server.CORSOrigins[0] == "*"
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
