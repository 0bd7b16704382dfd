// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/filelens/internal/api"
	"github.com/tomtom215/filelens/internal/controller"
	"github.com/tomtom215/filelens/internal/logging"
	"github.com/tomtom215/filelens/internal/supervisor"
	"github.com/tomtom215/filelens/internal/supervisor/services"
	ws "github.com/tomtom215/filelens/internal/websocket"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local web front end",
		Long: `Serve starts the JSON API under /api/v1, a websocket at /api/v1/ws that
pushes every state change, and Prometheus metrics at /metrics. The stats
load runs once at startup. Stop with SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd.Context())
		},
	}

	// Applied as config overrides in setup.
	cmd.Flags().String("host", "", "Listen host (overrides HTTP_HOST)")
	cmd.Flags().IntP("port", "p", 0, "Listen port (overrides HTTP_PORT)")
	return cmd
}

func (a *app) runServe(ctx context.Context) error {
	cfg := a.cfg

	ctrl, backend := a.newController()
	loader := controller.NewStatsLoader(backend)
	hub := ws.NewHub()
	ctrl.Subscribe(hub.BroadcastState)
	loader.Subscribe(hub.BroadcastStats)

	handler := api.NewHandler(ctrl, loader, hub, cfg.Server)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLoggerForComponent("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	tree.AddClientService(services.NewStatsLoaderService(loader))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows every origin")
	}
	logging.Info().
		Str("addr", server.Addr).
		Str("backend_url", cfg.Backend.URL).
		Str("ordering", cfg.Controller.Ordering).
		Msg("Starting FileLens web front end")

	// Serve returns once ctx is canceled and every layer has stopped.
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("FileLens stopped")
	return nil
}
