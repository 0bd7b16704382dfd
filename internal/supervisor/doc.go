// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package supervisor runs the `filelens serve` components under a suture v4
supervisor tree.

	filelens (root)
	├── client-layer     StatsLoaderService
	├── messaging-layer  WebSocketHubService
	└── api-layer        HTTPServerService

Each layer restarts its own failed services with suture's backoff. Events
are logged through the zerolog-backed slog handler via sutureslog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddClientService(services.NewStatsLoaderService(loader))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

The service wrappers live in the services subpackage.
*/
package supervisor
