// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

// Command filelens submits media filenames to a remote analysis service and
// shows the detected metadata.
//
// # Commands
//
//	filelens analyze <filename>   one analysis, printed as a result card
//	filelens stats                usage counters from the service
//	filelens interactive          line-based prompt; Enter submits
//	filelens serve                local web front end with live updates
//	filelens commands             the companion bot's command listing
//
// # Configuration
//
// Configuration is loaded via Koanf v2 (highest priority last):
//   - Built-in defaults
//   - Config file (--config, CONFIG_PATH, or ./config.yaml)
//   - Environment variables (BACKEND_URL, FILELENS_ORDERING, LOG_LEVEL, ...)
//   - Flags (--backend-url, --log-level)
//
// # Output
//
// --output text renders with lipgloss; --output json prints the UI state as
// JSON. Logs go to stderr, as console lines on a terminal and JSON otherwise
// unless LOG_FORMAT is set.
//
// # Example Usage
//
//	export BACKEND_URL=http://localhost:8001
//	filelens analyze "Avengers.Endgame.2019.2160p.BluRay.x265.10bit.HDR.TrueHD.7.1.Atmos-SWTYBLZ.mkv"
//	filelens serve --log-level debug
//
// # Exit Status
//
// filelens exits non-zero only for configuration, usage or startup errors. A
// failed analysis is reported in the output, not in the exit status.
package main
