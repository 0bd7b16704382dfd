// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

// Package services wraps the `filelens serve` components as suture.Service
// values. Each wrapper depends on a one-method interface rather than the
// concrete type, so the supervisor packages do not import api, websocket or
// controller.
package services
