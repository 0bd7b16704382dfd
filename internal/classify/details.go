// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package classify

import "github.com/tomtom215/filelens/internal/models"

// HasAnyFormatDetail reports whether the additional information section
// should be rendered: details must be present and at least one field truthy.
func HasAnyFormatDetail(d *models.FormatDetails) bool {
	if d == nil {
		return false
	}
	return nonEmpty(d.Year) ||
		nonEmpty(d.SeasonEpisode) ||
		isTrue(d.HasSubtitles) ||
		isTrue(d.HasMultipleAudio) ||
		isTrue(d.Is3D) ||
		isTrue(d.IsHDR)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// Classification bundles the presentation categories derived from a result.
type Classification struct {
	QualityClass QualityClass `json:"quality_class"`
	QualityEmoji string       `json:"quality_emoji"`
	Glyph        Glyph        `json:"glyph"`
	ShowDetails  bool         `json:"show_details"`
}

// Classify derives all presentation categories for r. A nil result yields
// the fallbacks.
func Classify(r *models.AnalysisResult) Classification {
	if r == nil {
		return Classification{
			QualityClass: QualityNeutral,
			QualityEmoji: defaultQualityEmoji,
			Glyph:        GlyphGeneric,
		}
	}
	fileType := r.FileType
	return Classification{
		QualityClass: QualityClassOf(r.Quality),
		QualityEmoji: QualityEmoji(r.Quality),
		Glyph:        FormatGlyphOf(&fileType),
		ShowDetails:  HasAnyFormatDetail(r.FormatDetails),
	}
}
