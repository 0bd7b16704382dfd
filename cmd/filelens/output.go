// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filelens/internal/models"
	"github.com/tomtom215/filelens/internal/view"
)

// printer writes states and stats in the selected output format. It is safe
// for use from controller listeners.
type printer struct {
	mu     sync.Mutex
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) State(s models.UIState) {
	if p.format == outputJSON {
		p.json(view.NewStateView(s))
		return
	}
	p.line(view.RenderState(s))
}

func (p *printer) Stats(s models.Stats, loaded bool) {
	if p.format == outputJSON {
		p.json(struct {
			Loaded bool `json:"loaded"`
			models.Stats
		}{Loaded: loaded, Stats: s})
		return
	}
	p.line(view.RenderStats(s))
}

func (p *printer) Commands() {
	if p.format == outputJSON {
		p.json(view.BotCommands())
		return
	}
	p.line(view.RenderCommands())
}

// Notice prints an informational line. JSON output skips notices so stdout
// stays machine readable.
func (p *printer) Notice(format string, args ...interface{}) {
	if p.format == outputJSON {
		return
	}
	p.line(view.Dim(fmt.Sprintf(format, args...)))
}

// Ignored reports input dropped because inFlight is still being analyzed.
func (p *printer) Ignored(input, inFlight string) {
	if p.format == outputJSON {
		p.json(struct {
			Ignored  string `json:"ignored"`
			InFlight string `json:"in_flight"`
		}{Ignored: input, InFlight: inFlight})
		return
	}
	p.Notice("Still analyzing %s, input ignored", inFlight)
}

func (p *printer) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *printer) json(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"error":%q}`, err.Error()))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = p.w.Write(append(data, '\n'))
}
