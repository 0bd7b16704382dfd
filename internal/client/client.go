// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filelens/internal/config"
	"github.com/tomtom215/filelens/internal/models"
)

// maxErrorBodySize limits how much of a failed response is kept for diagnostics.
const maxErrorBodySize = 64 * 1024 // 64KB

// BackendClient is the analysis service as seen by the controller.
//
// Implemented by Client and CircuitBreakerClient. Safe for concurrent use.
type BackendClient interface {
	Analyze(ctx context.Context, filename string) (*models.AnalysisResult, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// Client talks to the analysis service over HTTP. Each call is exactly one
// GET; there are no retries.
type Client struct {
	analyzeURL string
	statsURL   string
	client     *http.Client
}

// New creates a client for the configured backend.
func New(cfg *config.BackendConfig) *Client {
	return &Client{
		analyzeURL: cfg.AnalyzeURL(),
		statsURL:   cfg.StatsURL(),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// NewFromConfig returns the plain client, or the breaker-wrapped one when
// backend.breaker.enabled is set.
func NewFromConfig(cfg *config.BackendConfig) BackendClient {
	if cfg.Breaker.Enabled {
		return NewCircuitBreakerClient(cfg)
	}
	return New(cfg)
}

// Analyze requests metadata for filename. The value is sent as given and
// percent-encoded into the filename query parameter.
func (c *Client) Analyze(ctx context.Context, filename string) (*models.AnalysisResult, error) {
	params := url.Values{}
	params.Set("filename", filename)

	var result models.AnalysisResult
	if err := c.getJSON(ctx, c.analyzeURL+"?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats fetches the aggregate usage counters. A 200 body that carries an
// error field is reported as ErrBackendReported.
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.getJSON(ctx, c.statsURL, &stats); err != nil {
		return nil, err
	}
	if stats.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrBackendReported, stats.Error)
	}
	return &stats, nil
}

// getJSON performs one GET and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// readBodyForError reads at most maxErrorBodySize bytes of a failed response.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
