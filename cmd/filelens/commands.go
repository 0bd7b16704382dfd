// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package main

import (
	"github.com/spf13/cobra"
)

func newCommandsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the companion bot's commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newPrinter(cmd.OutOrStdout(), a.output).Commands()
			return nil
		},
	}
}
