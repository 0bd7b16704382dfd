// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/filelens/internal/client"
	"github.com/tomtom215/filelens/internal/controller"
	"github.com/tomtom215/filelens/internal/logging"
)

// newController builds the controller over the configured backend.
func (a *app) newController() (*controller.Controller, client.BackendClient) {
	backend := client.NewFromConfig(&a.cfg.Backend)
	return controller.New(backend, a.cfg.Controller.Ordering), backend
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <filename>",
		Short: "Analyze one filename",
		Long: `Analyze sends the filename to the analysis service once and prints the
detected metadata. Multiple arguments are joined with spaces, so quoting is
optional.`,
		Example: `  filelens analyze Movie.2023.1080p.WEB-DL.x264.mkv
  filelens analyze -o json "Show Name S01E02 720p.mp4"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _ := a.newController()
			ctx := logging.ContextWithNewCorrelationID(cmd.Context())

			state := ctrl.Submit(ctx, strings.Join(args, " "))
			newPrinter(cmd.OutOrStdout(), a.output).State(state)
			return nil
		},
	}
}
