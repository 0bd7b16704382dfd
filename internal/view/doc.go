// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

// Package view renders UI states, stats and the bot command listing for the
// terminal with lipgloss, and defines the JSON view shared by the CLI and
// the web API.
package view
