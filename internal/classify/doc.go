// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package classify maps raw analysis fields to presentation categories.

All functions are pure, total and deterministic. Unknown or absent inputs map
to a defined fallback rather than an error.

# Quality Tiers

Quality labels are matched exactly (case-sensitive) against a fixed table:

	BluRay  -> QualityBluRay
	WEB-DL  -> QualityWebDL
	WEBRip  -> QualityWebRip
	HDTV    -> QualityHDTV
	DVDRip  -> QualityDVDRip
	CAM     -> QualityCAM
	other   -> QualityNeutral

# Format Glyphs

File types are matched case-insensitively against mkv, mp4, avi and webm.
Anything else maps to GlyphGeneric.

# Format Details

HasAnyFormatDetail checks each detail field individually: a string counts
when present and non-empty, a bool counts when present and true.
*/
package classify
