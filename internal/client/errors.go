// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package client

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode wraps a 2xx response whose body is not the expected JSON.
	ErrDecode = errors.New("malformed response body")

	// ErrBackendReported is returned when the service answers 200 with an error field.
	ErrBackendReported = errors.New("backend reported an error")
)

// StatusError is a non-2xx response from the analysis service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}
