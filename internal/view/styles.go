// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/filelens/internal/classify"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)

// qualityStyles gives every quality class its own color, mirroring the
// color-coded badges of the web page.
var qualityStyles = map[classify.QualityClass]lipgloss.Style{
	classify.QualityBluRay:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")), // purple
	classify.QualityWebDL:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),  // blue
	classify.QualityWebRip:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("37")),  // teal
	classify.QualityHDTV:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34")),  // green
	classify.QualityDVDRip:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")), // orange
	classify.QualityCAM:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")), // red
	classify.QualityNeutral: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// QualityStyle returns the badge style for a quality class.
func QualityStyle(c classify.QualityClass) lipgloss.Style {
	if s, ok := qualityStyles[c]; ok {
		return s
	}
	return qualityStyles[classify.QualityNeutral]
}

// Dim renders s in the muted hint style.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// Prompt is the interactive input prompt.
func Prompt() string {
	return headingStyle.Render("filename> ")
}
