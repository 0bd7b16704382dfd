// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tomtom215/filelens/internal/controller"
	"github.com/tomtom215/filelens/internal/logging"
	"github.com/tomtom215/filelens/internal/models"
	"github.com/tomtom215/filelens/internal/view"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Analyze filenames typed at a prompt",
		Long: `Interactive reads one filename per line and analyzes it when Enter is
pressed. Every state change is printed as it happens. While an analysis is
outstanding new input is ignored. Usage counters load once in the background
at startup.

  /stats     show the usage counters
  /commands  list the companion bot's commands
  /quit      exit (end of input also exits)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) runInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	ctrl, backend := a.newController()
	loader := controller.NewStatsLoader(backend)
	p := newPrinter(out, a.output)

	unsubscribe := ctrl.Subscribe(p.State)
	defer unsubscribe()
	loader.Subscribe(func(s models.Stats) { p.Stats(s, true) })

	var wg sync.WaitGroup
	defer wg.Wait()

	wg.Add(1)
	go func() {
		defer wg.Done()
		loader.Load(logging.ContextWithNewCorrelationID(ctx))
	}()

	showPrompt := isTerminal(in) && a.output == outputText
	prompt := func() {
		if showPrompt {
			p.mu.Lock()
			_, _ = fmt.Fprint(out, view.Prompt())
			p.mu.Unlock()
		}
	}

	p.Notice("Type a filename and press Enter. /stats, /commands, /quit.")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		prompt()
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			return <-scanErr
		}

		switch strings.TrimSpace(line) {
		case "/quit", "/exit":
			return nil
		case "/stats":
			p.Stats(loader.Stats(), loader.Loaded())
			continue
		case "/commands", "/help":
			p.Commands()
			continue
		}

		wg.Add(1)
		go func(raw string) {
			defer wg.Done()
			reqCtx := logging.ContextWithNewCorrelationID(ctx)
			if _, err := ctrl.TrySubmit(reqCtx, raw); errors.Is(err, controller.ErrInFlight) {
				p.Ignored(raw, ctrl.Snapshot().Filename)
			}
		}(line)
	}
}
