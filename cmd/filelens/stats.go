// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/filelens/internal/client"
	"github.com/tomtom215/filelens/internal/controller"
	"github.com/tomtom215/filelens/internal/logging"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the service's usage counters",
		Long: `Stats fetches the usage counters once. When the fetch fails the counters
are shown as zero and the failure is only logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := controller.NewStatsLoader(client.NewFromConfig(&a.cfg.Backend))
			loader.Load(logging.ContextWithNewCorrelationID(cmd.Context()))

			newPrinter(cmd.OutOrStdout(), a.output).Stats(loader.Stats(), loader.Loaded())
			return nil
		},
	}
}
