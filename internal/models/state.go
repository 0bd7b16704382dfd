// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package models

// UIState is the composite client state observed by renderers.
//
// After a completed request exactly one of Result and Error is set. Both are
// cleared when a new request starts.
type UIState struct {
	Filename string          `json:"filename"`
	Result   *AnalysisResult `json:"result,omitempty"`
	Loading  bool            `json:"loading"`
	Error    string          `json:"error,omitempty"`

	// Seq is the sequence number of the most recently issued request.
	Seq uint64 `json:"seq"`
}

// HasResult reports whether a result is present.
func (s UIState) HasResult() bool {
	return s.Result != nil
}

// HasError reports whether an error message is present.
func (s UIState) HasError() bool {
	return s.Error != ""
}
