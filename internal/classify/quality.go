// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package classify

// QualityClass is the presentation category for a quality tier.
type QualityClass string

const (
	QualityBluRay  QualityClass = "quality-bluray"
	QualityWebDL   QualityClass = "quality-webdl"
	QualityWebRip  QualityClass = "quality-webrip"
	QualityHDTV    QualityClass = "quality-hdtv"
	QualityDVDRip  QualityClass = "quality-dvdrip"
	QualityCAM     QualityClass = "quality-cam"
	QualityNeutral QualityClass = "quality-neutral"
)

// qualityClasses maps exact backend quality labels to presentation classes
var qualityClasses = map[string]QualityClass{
	"BluRay": QualityBluRay,
	"WEB-DL": QualityWebDL,
	"WEBRip": QualityWebRip,
	"HDTV":   QualityHDTV,
	"DVDRip": QualityDVDRip,
	"CAM":    QualityCAM,
}

// QualityClassOf returns the presentation class for a quality label.
//
// Matching is exact and case-sensitive: "bluray" and "Blu-Ray" both fall back
// to QualityNeutral, as does a nil label.
func QualityClassOf(quality *string) QualityClass {
	if quality == nil {
		return QualityNeutral
	}
	if class, ok := qualityClasses[*quality]; ok {
		return class
	}
	return QualityNeutral
}

// KnownQualities returns the quality labels with a dedicated class.
func KnownQualities() []string {
	return []string{"BluRay", "WEB-DL", "WEBRip", "HDTV", "DVDRip", "CAM"}
}

// qualityEmoji covers the wider tier set reported by the backend, including
// tiers that share the neutral class.
var qualityEmoji = map[string]string{
	"CAM":    "📷",
	"TS":     "📽️",
	"DVDRip": "💿",
	"BluRay": "💎",
	"WEB-DL": "🌐",
	"WEBRip": "🌐",
	"HDTV":   "📺",
	"UHD":    "👑",
	"REMUX":  "✨",
}

// defaultQualityEmoji is used for absent or unrecognized tiers
const defaultQualityEmoji = "🎬"

// QualityEmoji returns the emoji shown next to a quality label in plain-text output.
func QualityEmoji(quality *string) string {
	if quality == nil {
		return defaultQualityEmoji
	}
	if e, ok := qualityEmoji[*quality]; ok {
		return e
	}
	return defaultQualityEmoji
}
