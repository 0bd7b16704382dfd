// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package view

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filelens/internal/classify"
	"github.com/tomtom215/filelens/internal/models"
)

func avengersResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Filename:   "Avengers.Endgame.2019.2160p.BluRay.x265.10bit.HDR.TrueHD.7.1.Atmos-SWTYBLZ.mkv",
		FileType:   "mkv",
		Quality:    models.StringPtr("BluRay"),
		Resolution: models.StringPtr("2160p"),
		Codec:      models.StringPtr("x265"),
		AudioCodec: models.StringPtr("TrueHD 7.1 Atmos"),
		FormatDetails: &models.FormatDetails{
			Year:  models.StringPtr("2019"),
			IsHDR: models.BoolPtr(true),
		},
	}
}

func TestRenderResult_FieldOrder(t *testing.T) {
	t.Parallel()

	out := RenderResult(avengersResult())

	order := []string{"Format:", "Quality:", "Resolution:", "Video Codec:", "Audio Codec:", "Additional Information", "Year:", "HDR:"}
	last := -1
	for _, label := range order {
		idx := strings.Index(out, label)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", label, out)
		}
		if idx < last {
			t.Errorf("%q rendered out of order", label)
		}
		last = idx
	}

	for _, want := range []string{"💎 BluRay", "2160p", "TrueHD 7.1 Atmos", "MKV", string(classify.GlyphMKV)} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	for _, absent := range []string{"Language:", "Source:", "Episode:", "Subtitles:", "3D:"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should not contain %q", absent)
		}
	}
}

func TestRenderResult_DetailsSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		details *models.FormatDetails
		want    bool
	}{
		{"absent", nil, false},
		{"empty", &models.FormatDetails{}, false},
		{"all false", &models.FormatDetails{HasSubtitles: models.BoolPtr(false), IsHDR: models.BoolPtr(false)}, false},
		{"empty year", &models.FormatDetails{Year: models.StringPtr("")}, false},
		{"hdr", &models.FormatDetails{IsHDR: models.BoolPtr(true)}, true},
		{"episode", &models.FormatDetails{SeasonEpisode: models.StringPtr("S02E05")}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &models.AnalysisResult{Filename: "x.mp4", FileType: "mp4", FormatDetails: tt.details}
			got := strings.Contains(RenderResult(r), "Additional Information")
			if got != tt.want {
				t.Errorf("details section rendered = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state models.UIState
		want  string
	}{
		{"idle", models.UIState{}, "Enter a filename"},
		{"loading", models.UIState{Filename: "a.mkv", Loading: true}, "Analyzing a.mkv"},
		{"validation", models.UIState{Error: "Please enter a filename"}, "Please enter a filename"},
		{"failure", models.UIState{Error: "Failed to analyze file. Please try again."}, "Failed to analyze file"},
		{"result", models.UIState{Result: avengersResult()}, "File Analysis Results"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if out := RenderState(tt.state); !strings.Contains(out, tt.want) {
				t.Errorf("RenderState() = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestRenderStats(t *testing.T) {
	t.Parallel()

	out := RenderStats(models.Stats{TotalUsers: 42, TotalAnalyses: 1337, Status: "active"})
	for _, want := range []string{"42", "users", "1,337", "analyses", "active"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderStats() = %q, missing %q", out, want)
		}
	}
}

func TestRenderStats_ThousandsSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		users, analyses int64
		want            []string
	}{
		{0, 999, []string{"0", "999"}},
		{1000, 123456, []string{"1,000", "123,456"}},
		{1234567, 1337, []string{"1,234,567", "1,337"}},
	}
	for _, tt := range tests {
		tt := tt
		out := RenderStats(models.Stats{TotalUsers: tt.users, TotalAnalyses: tt.analyses})
		for _, want := range tt.want {
			if !strings.Contains(out, want) {
				t.Errorf("RenderStats(%d, %d) = %q, missing %q", tt.users, tt.analyses, out, want)
			}
		}
	}
}

func TestNewStateView_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewStateView(models.UIState{Filename: "a.mkv", Result: avengersResult(), Seq: 3}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["filename"] != "a.mkv" {
		t.Errorf("filename = %v", decoded["filename"])
	}
	c, ok := decoded["classification"].(map[string]interface{})
	if !ok {
		t.Fatalf("classification missing: %s", data)
	}
	if c["quality_class"] != string(classify.QualityBluRay) || c["show_details"] != true {
		t.Errorf("classification = %v", c)
	}

	empty, _ := json.Marshal(NewStateView(models.UIState{Error: "Please enter a filename"}))
	if strings.Contains(string(empty), "classification") {
		t.Errorf("classification should be omitted without a result: %s", empty)
	}
}

func TestBotCommands(t *testing.T) {
	t.Parallel()

	cmds := BotCommands()
	want := []string{"/start", "/help", "/analyze <filename>", "/stats"}
	if len(cmds) != len(want) {
		t.Fatalf("len = %d, want %d", len(cmds), len(want))
	}
	for i, w := range want {
		if cmds[i].Command != w {
			t.Errorf("command %d = %q, want %q", i, cmds[i].Command, w)
		}
	}

	cmds[0].Command = "/changed"
	if BotCommands()[0].Command != "/start" {
		t.Error("BotCommands should return a copy")
	}

	out := RenderCommands()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("RenderCommands() missing %q", w)
		}
	}
}
