// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

// Package logging provides the zerolog-based structured logger used across FileLens.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "console"})
//
//	logging.Info().Str("backend", url).Msg("Client ready")
//	logging.Err(err).Msg("Stats fetch failed")
//
//	// With correlation/request IDs carried by the context
//	logging.Ctx(ctx).Warn().Int("status", 502).Msg("Analysis request failed")
//
// # Configuration
//
// Level, format and caller info come from the logging section of the
// application config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER). The CLI switches to
// console output automatically when stderr is a terminal.
//
// # Supervisor Integration
//
// SlogHandler adapts zerolog to log/slog so the suture event hook
// (github.com/thejerf/sutureslog) writes into the same stream.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(), and prefer structured
// fields over Msgf.
package logging
