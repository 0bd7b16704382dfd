// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package models

import "strings"

// AnalysisRequest is a filename submitted for analysis.
type AnalysisRequest struct {
	Filename string `json:"filename" validate:"required,max=1024"`
}

// NewAnalysisRequest returns a request for raw, or false when raw is empty
// or whitespace only. The stored filename is the raw input; trimming only
// decides validity.
func NewAnalysisRequest(raw string) (AnalysisRequest, bool) {
	if strings.TrimSpace(raw) == "" {
		return AnalysisRequest{}, false
	}
	return AnalysisRequest{Filename: raw}, true
}

// AnalysisResult is the metadata record returned by the analysis backend.
// Filename and FileType are always present; everything else is optional.
type AnalysisResult struct {
	Filename      string         `json:"filename"`
	FileType      string         `json:"file_type"`
	Quality       *string        `json:"quality,omitempty"`
	Resolution    *string        `json:"resolution,omitempty"`
	Codec         *string        `json:"codec,omitempty"`
	AudioCodec    *string        `json:"audio_codec,omitempty"`
	Source        *string        `json:"source,omitempty"`
	Language      *string        `json:"language,omitempty"`
	FormatDetails *FormatDetails `json:"format_details,omitempty"`
}

// FormatDetails holds the optional supplementary fields of a result.
type FormatDetails struct {
	Year             *string `json:"year,omitempty"`
	SeasonEpisode    *string `json:"season_episode,omitempty"`
	HasSubtitles     *bool   `json:"has_subtitles,omitempty"`
	HasMultipleAudio *bool   `json:"has_multiple_audio,omitempty"`
	Is3D             *bool   `json:"is_3d,omitempty"`
	IsHDR            *bool   `json:"is_hdr,omitempty"`
}

// QualityValue returns the quality label or "" when absent.
func (r *AnalysisResult) QualityValue() string {
	return deref(r.Quality)
}

// Clone returns a deep copy so callers can hand out results without sharing
// the underlying pointers.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Quality = cloneString(r.Quality)
	c.Resolution = cloneString(r.Resolution)
	c.Codec = cloneString(r.Codec)
	c.AudioCodec = cloneString(r.AudioCodec)
	c.Source = cloneString(r.Source)
	c.Language = cloneString(r.Language)
	if r.FormatDetails != nil {
		d := *r.FormatDetails
		d.Year = cloneString(r.FormatDetails.Year)
		d.SeasonEpisode = cloneString(r.FormatDetails.SeasonEpisode)
		d.HasSubtitles = cloneBool(r.FormatDetails.HasSubtitles)
		d.HasMultipleAudio = cloneBool(r.FormatDetails.HasMultipleAudio)
		d.Is3D = cloneBool(r.FormatDetails.Is3D)
		d.IsHDR = cloneBool(r.FormatDetails.IsHDR)
		c.FormatDetails = &d
	}
	return &c
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
