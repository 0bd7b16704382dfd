// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package models

// Stats holds the aggregate usage counters reported by the statistics endpoint.
// The backend may answer 200 with an Error field instead of counters.
type Stats struct {
	TotalUsers    int64  `json:"total_users"`
	TotalAnalyses int64  `json:"total_analyses"`
	Status        string `json:"status,omitempty"`
	Error         string `json:"error,omitempty"`
}
