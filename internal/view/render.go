// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package view

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/filelens/internal/classify"
	"github.com/tomtom215/filelens/internal/models"
)

// StateView is the JSON shape of a UI state: the raw state plus the
// presentation categories of its result.
type StateView struct {
	models.UIState
	Classification *classify.Classification `json:"classification,omitempty"`
}

// NewStateView classifies s. Classification is nil when there is no result.
func NewStateView(s models.UIState) StateView {
	v := StateView{UIState: s}
	if s.Result != nil {
		c := classify.Classify(s.Result)
		v.Classification = &c
	}
	return v
}

// RenderState draws whichever of loading, error, result or the idle prompt
// the state is in.
func RenderState(s models.UIState) string {
	switch {
	case s.Loading:
		return dimStyle.Render(fmt.Sprintf("⏳ Analyzing %s ...", s.Filename))
	case s.HasError():
		return errStyle.Render("✗ " + s.Error)
	case s.HasResult():
		return RenderResult(s.Result)
	default:
		return dimStyle.Render("Enter a filename to analyze")
	}
}

// RenderResult draws an analysis result as a labelled attribute list. Absent
// and empty attributes are skipped.
func RenderResult(r *models.AnalysisResult) string {
	if r == nil {
		return ""
	}
	c := classify.Classify(r)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s File Analysis Results", c.Glyph)))
	sb.WriteString("\n")
	sb.WriteString(row("Filename", codeStyle.Render(r.Filename)))

	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("Detected Metadata"))
	sb.WriteString("\n")
	sb.WriteString(row("Format", fmt.Sprintf("%s %s", c.Glyph, strings.ToUpper(r.FileType))))
	if q := r.QualityValue(); q != "" {
		sb.WriteString(row("Quality", QualityStyle(c.QualityClass).Render(c.QualityEmoji+" "+q)))
	}
	optionalRow(&sb, "Resolution", "📺", r.Resolution)
	optionalRow(&sb, "Video Codec", "🎥", r.Codec)
	optionalRow(&sb, "Audio Codec", "🔊", r.AudioCodec)
	optionalRow(&sb, "Language", "🌐", r.Language)
	optionalRow(&sb, "Source", "📡", r.Source)

	if c.ShowDetails {
		d := r.FormatDetails
		sb.WriteString("\n")
		sb.WriteString(headingStyle.Render("Additional Information"))
		sb.WriteString("\n")
		optionalRow(&sb, "Year", "📅", d.Year)
		optionalRow(&sb, "Episode", "📺", d.SeasonEpisode)
		flagRow(&sb, "Subtitles", "💬", d.HasSubtitles)
		flagRow(&sb, "Multi-Audio", "🎵", d.HasMultipleAudio)
		flagRow(&sb, "3D", "🕶️", d.Is3D)
		flagRow(&sb, "HDR", "✨", d.IsHDR)
	}

	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderStats draws the usage counters.
func RenderStats(s models.Stats) string {
	line := fmt.Sprintf("👥 %s users  🔍 %s analyses",
		okStyle.Render(humanize.Comma(s.TotalUsers)),
		okStyle.Render(humanize.Comma(s.TotalAnalyses)))
	if s.Status != "" {
		line += dimStyle.Render("  (" + s.Status + ")")
	}
	return line
}

func row(label, value string) string {
	return labelStyle.Render(label+":") + " " + value + "\n"
}

func optionalRow(sb *strings.Builder, label, icon string, value *string) {
	if value == nil || *value == "" {
		return
	}
	sb.WriteString(row(label, icon+" "+*value))
}

func flagRow(sb *strings.Builder, label, icon string, value *bool) {
	if value == nil || !*value {
		return
	}
	sb.WriteString(row(label, icon+" Yes"))
}
