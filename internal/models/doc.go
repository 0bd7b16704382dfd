// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package models defines the data structures exchanged with the analysis backend
and held by the client.

Key Components:

  - AnalysisRequest: a single trimmed filename submitted for analysis
  - AnalysisResult: the metadata record returned by the backend
  - FormatDetails: optional supplementary flags attached to a result
  - Stats: aggregate usage counters from the statistics endpoint
  - UIState: the composite client state observed by renderers

Optional Fields:

Every optional backend field is a pointer so that an absent value can be told
apart from an empty one. Accessors such as AnalysisResult.QualityValue return
the zero value for absent fields when the distinction does not matter.

JSON Encoding:

Types carry json tags matching the backend wire format (snake_case) and are
encoded with github.com/goccy/go-json throughout the application.
*/
package models
