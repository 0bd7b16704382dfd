// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomtom215/filelens/internal/config"
	"github.com/tomtom215/filelens/internal/logging"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// app holds the global flags and the configuration resolved from them.
type app struct {
	configPath string
	output     string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "filelens",
		Short: "Analyze media filenames with a remote metadata service",
		Long: `FileLens sends a media filename to an analysis service and shows the
detected format, quality, resolution, codecs and other metadata.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Configuration file path")
	flags.String("backend-url", "", "Analysis service base URL (overrides BACKEND_URL)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.StringVarP(&a.output, "output", "o", outputText, "Output format: text or json")

	root.AddCommand(
		newAnalyzeCmd(a),
		newStatsCmd(a),
		newInteractiveCmd(a),
		newServeCmd(a),
		newCommandsCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and initializes logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.output != outputText && a.output != outputJSON {
		return fmt.Errorf("--output must be %q or %q, got %q", outputText, outputJSON, a.output)
	}

	cfg, err := config.LoadFile(a.configPath, flagOverrides(cmd))
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    logFormat(cfg.Logging.Format, cmd.ErrOrStderr()),
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})
	logging.Debug().
		Str("backend_url", cfg.Backend.URL).
		Str("ordering", cfg.Controller.Ordering).
		Bool("breaker", cfg.Backend.Breaker.Enabled).
		Msg("Configuration loaded")
	return nil
}

// logFormat prefers an explicit LOG_FORMAT, then console for a terminal.
// overrideFlags maps flags to the config paths they override.
var overrideFlags = map[string]string{
	"backend-url": "backend.url",
	"log-level":   "logging.level",
	"host":        "server.host",
	"port":        "server.port",
}

// flagOverrides collects the explicitly set flags of cmd as config overrides.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	for name, path := range overrideFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[path] = f.Value.String()
		}
	}
	return overrides
}

func logFormat(configured string, w io.Writer) string {
	if _, set := os.LookupEnv("LOG_FORMAT"); set {
		return configured
	}
	if isTerminal(w) {
		return "console"
	}
	return configured
}

func isTerminal(v interface{}) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
