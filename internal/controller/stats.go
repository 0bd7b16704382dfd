// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package controller

import (
	"context"
	"sync"

	"github.com/tomtom215/filelens/internal/client"
	"github.com/tomtom215/filelens/internal/logging"
	"github.com/tomtom215/filelens/internal/metrics"
	"github.com/tomtom215/filelens/internal/models"
)

// StatsLoader fetches the usage counters once. Failures are logged and the
// counters stay at their zero value; there is no retry and no refresh.
type StatsLoader struct {
	backend  client.BackendClient
	loadOnce sync.Once

	mu        sync.RWMutex
	stats     models.Stats
	loaded    bool
	listeners []func(models.Stats)
}

// NewStatsLoader creates a loader. Call Load once at startup.
func NewStatsLoader(backend client.BackendClient) *StatsLoader {
	return &StatsLoader{backend: backend}
}

// Load issues the single stats request. Only the first call does anything.
// It reports whether the counters were replaced.
func (l *StatsLoader) Load(ctx context.Context) bool {
	updated := false
	l.loadOnce.Do(func() {
		updated = l.fetch(ctx)
	})
	return updated
}

func (l *StatsLoader) fetch(ctx context.Context) bool {
	log := logging.Ctx(ctx).With().Str("component", "stats").Logger()

	stats, err := l.backend.Stats(ctx)
	if err != nil {
		metrics.RecordStatsFetch(outcomeOf(err))
		log.Warn().Err(err).Msg("Failed to load stats")
		return false
	}
	metrics.RecordStatsFetch(metrics.OutcomeSuccess)

	l.mu.Lock()
	l.stats = *stats
	l.loaded = true
	listeners := append([]func(models.Stats){}, l.listeners...)
	l.mu.Unlock()

	log.Debug().Int64("total_users", stats.TotalUsers).Int64("total_analyses", stats.TotalAnalyses).Msg("Stats loaded")

	for _, fn := range listeners {
		fn(*stats)
	}
	return true
}

// Stats returns the current counters.
func (l *StatsLoader) Stats() models.Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stats
}

// Loaded reports whether a fetch has succeeded.
func (l *StatsLoader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Subscribe registers fn to receive the counters when they load.
func (l *StatsLoader) Subscribe(fn func(models.Stats)) {
	l.mu.Lock()
	l.listeners = append(l.listeners, fn)
	l.mu.Unlock()
}
