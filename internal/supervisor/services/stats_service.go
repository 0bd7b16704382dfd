// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package services

import (
	"context"

	"github.com/tomtom215/filelens/internal/logging"
)

// StatsLoader is satisfied by *controller.StatsLoader.
type StatsLoader interface {
	Load(ctx context.Context) bool
}

// StatsLoaderService performs the one stats fetch at startup and then idles
// until shutdown. A restart by the supervisor does not fetch again because
// the loader only ever loads once.
type StatsLoaderService struct {
	loader StatsLoader
	name   string
}

// NewStatsLoaderService creates a new stats loader service wrapper.
func NewStatsLoaderService(loader StatsLoader) *StatsLoaderService {
	return &StatsLoaderService{
		loader: loader,
		name:   "stats-loader",
	}
}

// Serve implements suture.Service.
func (s *StatsLoaderService) Serve(ctx context.Context) error {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	loaded := s.loader.Load(ctx)
	logging.Ctx(ctx).Debug().Str("component", s.name).Bool("loaded", loaded).Msg("startup stats load finished")

	<-ctx.Done()
	return ctx.Err()
}

// String names the service in supervisor logs.
func (s *StatsLoaderService) String() string {
	return s.name
}
