// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package classify

import "strings"

// Glyph is the icon token shown for a container format.
type Glyph string

const (
	GlyphMKV     Glyph = "🎬"
	GlyphMP4     Glyph = "📹"
	GlyphAVI     Glyph = "🎞️"
	GlyphWebM    Glyph = "🌐"
	GlyphGeneric Glyph = "📄"
)

var formatGlyphs = map[string]Glyph{
	"mkv":  GlyphMKV,
	"mp4":  GlyphMP4,
	"avi":  GlyphAVI,
	"webm": GlyphWebM,
}

// FormatGlyphOf returns the glyph for a file type token.
//
// Lookup is case-insensitive, so "MKV" and "mkv" yield the same glyph.
// Absent or unknown types (e.g. "flac") yield GlyphGeneric.
func FormatGlyphOf(fileType *string) Glyph {
	if fileType == nil {
		return GlyphGeneric
	}
	if g, ok := formatGlyphs[strings.ToLower(*fileType)]; ok {
		return g
	}
	return GlyphGeneric
}
