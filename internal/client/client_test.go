// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/filelens/internal/config"
)

func testBackendConfig(url string) *config.BackendConfig {
	return &config.BackendConfig{
		URL:     url,
		Timeout: 5 * time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			FailureThreshold: 2,
		},
	}
}

func TestAnalyze_Success(t *testing.T) {
	t.Parallel()

	seen := make(chan *http.Request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"filename": "Avengers.Endgame.2019.1080p.BluRay.x264.mkv",
			"file_type": "mkv",
			"quality": "BluRay",
			"resolution": "1080p",
			"codec": "x264",
			"format_details": {"year": "2019"}
		}`))
	}))
	defer server.Close()

	c := New(testBackendConfig(server.URL))
	result, err := c.Analyze(context.Background(), "Avengers.Endgame.2019.1080p.BluRay.x264.mkv")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	req := <-seen
	if req.URL.Path != "/api/analyze-file" {
		t.Errorf("path = %q, want /api/analyze-file", req.URL.Path)
	}
	if got := req.URL.Query().Get("filename"); got != "Avengers.Endgame.2019.1080p.BluRay.x264.mkv" {
		t.Errorf("filename param = %q", got)
	}
	if result.QualityValue() != "BluRay" {
		t.Errorf("Quality = %q, want BluRay", result.QualityValue())
	}
	if result.AudioCodec != nil {
		t.Errorf("AudioCodec = %v, want nil for absent field", *result.AudioCodec)
	}
	if result.FormatDetails == nil || result.FormatDetails.Year == nil || *result.FormatDetails.Year != "2019" {
		t.Errorf("FormatDetails.Year not decoded: %+v", result.FormatDetails)
	}
}

func TestAnalyze_EscapesFilename(t *testing.T) {
	t.Parallel()

	const raw = "My Movie & Friends (2020) #1?.mkv"
	seen := make(chan *http.Request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r
		_, _ = w.Write([]byte(`{"filename":"x","file_type":"mkv"}`))
	}))
	defer server.Close()

	if _, err := New(testBackendConfig(server.URL)).Analyze(context.Background(), raw); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	req := <-seen
	gotRawQuery := req.URL.RawQuery
	if gotFilename := req.URL.Query().Get("filename"); gotFilename != raw {
		t.Errorf("decoded filename = %q, want %q", gotFilename, raw)
	}
	if strings.ContainsAny(gotRawQuery, " #") || strings.Count(gotRawQuery, "&") != 0 {
		t.Errorf("raw query not escaped: %q", gotRawQuery)
	}
}

func TestAnalyze_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   "boom",
			check: func(err error) bool {
				var se *StatusError
				return errors.As(err, &se) && se.StatusCode == 500 && se.Body == "boom"
			},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(err error) bool {
				var se *StatusError
				return errors.As(err, &se) && se.StatusCode == 404
			},
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   "{not json",
			check:  func(err error) bool { return errors.Is(err, ErrDecode) },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			result, err := New(testBackendConfig(server.URL)).Analyze(context.Background(), "a.mkv")
			if err == nil {
				t.Fatal("expected error")
			}
			if result != nil {
				t.Errorf("result = %+v, want nil on failure", result)
			}
			if !tt.check(err) {
				t.Errorf("unexpected error type: %v", err)
			}
		})
	}
}

func TestAnalyze_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(testBackendConfig(url)).Analyze(context.Background(), "a.mkv")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Errorf("transport failure should not be a StatusError: %v", err)
	}
}

func TestAnalyze_ContextCanceled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(testBackendConfig(server.URL)).Analyze(ctx, "a.mkv")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantUsers int64
		wantErr   error
	}{
		{name: "ok", status: 200, body: `{"total_users":42,"total_analyses":1337,"status":"operational"}`, wantUsers: 42},
		{name: "error field", status: 200, body: `{"error":"database unavailable"}`, wantErr: ErrBackendReported},
		{name: "bad body", status: 200, body: `[]`, wantErr: ErrDecode},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/stats" {
					t.Errorf("path = %q", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			stats, err := New(testBackendConfig(server.URL)).Stats(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if stats.TotalUsers != tt.wantUsers {
				t.Errorf("TotalUsers = %d, want %d", stats.TotalUsers, tt.wantUsers)
			}
		})
	}
}

func TestReadBodyForError_Truncates(t *testing.T) {
	t.Parallel()

	body := readBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize+100)))
	if !strings.HasSuffix(string(body), "(truncated)") {
		t.Error("expected truncation marker")
	}
	if len(body) > maxErrorBodySize+32 {
		t.Errorf("body length = %d, want about %d", len(body), maxErrorBodySize)
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := testBackendConfig("http://localhost:1")
	if _, ok := NewFromConfig(cfg).(*Client); !ok {
		t.Error("breaker disabled should give *Client")
	}
	cfg.Breaker.Enabled = true
	if _, ok := NewFromConfig(cfg).(*CircuitBreakerClient); !ok {
		t.Error("breaker enabled should give *CircuitBreakerClient")
	}
}

func TestAnalyze_OneRequestPerCall(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, _ = New(testBackendConfig(server.URL)).Analyze(context.Background(), "a.mkv")
	if got := hits.Load(); got != 1 {
		t.Errorf("backend hits = %d, want 1 (no retries)", got)
	}
}
